// Package form keeps the editable field state of a query form and compiles it
// into query descriptors.
//
// A Spec declares the form: the discriminator tag, the primary field that must
// be chosen before anything is emitted, the remaining fields with their
// defaults and commit behaviour, and forced-value rules. Compile and Convert
// are pure functions over a State so they can be exercised without any UI.
// Synchronizer owns one State and calls its Listener whenever a commit yields a
// descriptor:
//
//	sync, _ := form.New(spec, form.WithListener(func(d query.Descriptor, label string) {
//		fmt.Println(label)
//	}))
//	_ = sync.SetField("field", "host")   // select-style field, compiles now
//	_ = sync.SetField("size", "500")     // free text, waits for a commit
//	_ = sync.CommitField("size")         // blur, compiles
//
// Input anomalies never surface as errors: non-numeric text in an integer
// field is treated as absent and an unset primary field suppresses emission.
// The only errors returned are for programming mistakes such as unknown field
// names or invalid specs.
package form
