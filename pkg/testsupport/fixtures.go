package testsupport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-queryform/pkg/query"
)

// Case is one scripted edit sequence together with the descriptor it should
// compile to. Golden case files hold a JSON array of cases.
type Case struct {
	Name  string         `json:"name"`
	Prior map[string]any `json:"prior,omitempty"`
	Steps []Step         `json:"steps"`
	Want  map[string]any `json:"want,omitempty"`
	Label string         `json:"label,omitempty"`
}

// Step is a single field edit. Commit marks a blur after the edit.
type Step struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Commit bool   `json:"commit,omitempty"`
}

// MustLoadCases loads a JSON case file, failing the test on error.
func MustLoadCases(t *testing.T, path string) []Case {
	t.Helper()

	cases, err := LoadCases(path)
	if err != nil {
		t.Fatalf("load cases: %v", err)
	}
	return cases
}

// LoadCases reads a JSON case file without requiring testing.T.
func LoadCases(path string) ([]Case, error) {
	if path == "" {
		return nil, errors.New("testsupport: case path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read cases: %w", err)
	}
	var out []Case
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal cases: %w", err)
	}
	return out, nil
}

// DescriptorDiff compares a compiled descriptor with an expected mapping
// decoded from JSON. Whole numbers in want are compared as ints.
func DescriptorDiff(want map[string]any, got query.Descriptor) string {
	normalised := make(map[string]any, len(want))
	for k, v := range want {
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			normalised[k] = int(f)
			continue
		}
		normalised[k] = v
	}
	return cmp.Diff(normalised, got.Map())
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
