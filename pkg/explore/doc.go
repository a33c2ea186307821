// Package explore is the boundary between query forms and the surrounding
// explore view. The view is reduced to three collaborators: a sink receiving
// query changes, a run/clear command pair, and the raw time range. Session is
// an in-memory implementation that keeps one row per query editor and hands
// complete rows to a Runner.
package explore
