// Package fault models the failure objects consumed by the error handler.
// A Fault carries the runtime type name, optional code, message, origin
// location, and stack trace of a failure, plus an optional back-reference to
// the failure that caused it. Faults form a singly-linked chain, root first.
package fault

// Fault is a single failure in a causal chain. It implements the standard
// error interface and supports errors.Is / errors.As traversal via Unwrap.
type Fault struct {
	Kind     string   // runtime type name of the originating failure
	Code     string   // optional code; "" and "0" are treated as unset
	Message  string   // human-readable message
	File     string   // origin source file, if known
	Line     int      // origin line, if known
	Trace    []string // rendered stack trace, one line per entry
	Previous *Fault   // the failure this one was caused by, if any
}

// Error returns the failure message.
func (f *Fault) Error() string {
	return f.Message
}

// Unwrap returns the previous failure for compatibility with errors.Is / errors.As.
func (f *Fault) Unwrap() error {
	if f.Previous == nil {
		return nil
	}
	return f.Previous
}

// Chain returns the ordered sequence of failures: the root first, then each
// previous cause until none remains. The receiver is never mutated; the
// returned slice is freshly allocated on every call.
func (f *Fault) Chain() []*Fault {
	var chain []*Fault
	for cur := f; cur != nil; cur = cur.Previous {
		chain = append(chain, cur)
	}
	return chain
}

// CodeSet reports whether the code carries a usable value. Mirrors the
// legacy truthiness rule: empty and "0" both count as unset.
func (f *Fault) CodeSet() bool {
	return f.Code != "" && f.Code != "0"
}
