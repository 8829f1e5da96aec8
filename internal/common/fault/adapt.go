package fault

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// stackTracer is the interface exposed by errors created with
// github.com/pkg/errors. Faults adapted from such errors inherit their
// recorded call stack.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// coder is implemented by errors that carry an application code.
type coder interface {
	Code() string
}

// From adapts an arbitrary Go error into a Fault chain. The error's Unwrap
// chain becomes the Previous chain, root first. Kind is taken from the
// dynamic type of each error; file, line, and trace are populated from a
// pkg/errors stack trace when the error records one. A *Fault passes
// through unchanged.
func From(err error) *Fault {
	if err == nil {
		return nil
	}
	if f, ok := err.(*Fault); ok {
		return f
	}

	root := fromSingle(err)
	cur := root
	for prev := errors.Unwrap(err); prev != nil; prev = errors.Unwrap(prev) {
		if f, ok := prev.(*Fault); ok {
			cur.Previous = f
			break
		}
		cur.Previous = fromSingle(prev)
		cur = cur.Previous
	}
	return root
}

// fromSingle builds a Fault for one error without following its cause.
func fromSingle(err error) *Fault {
	f := &Fault{
		Kind:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}
	if c, ok := err.(coder); ok {
		f.Code = c.Code()
	}
	if st, ok := err.(stackTracer); ok {
		f.File, f.Line, f.Trace = framesToTrace(st.StackTrace())
	}
	return f
}

// framesToTrace renders pkg/errors stack frames into trace lines and
// extracts the origin file and line from the topmost frame.
func framesToTrace(frames pkgerrors.StackTrace) (file string, line int, trace []string) {
	for i, fr := range frames {
		pc := uintptr(fr) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			trace = append(trace, "unknown")
			continue
		}
		frFile, frLine := fn.FileLine(pc)
		if i == 0 {
			file = frFile
			line = frLine
		}
		trace = append(trace, fmt.Sprintf("%s\n\t%s:%d", fn.Name(), frFile, frLine))
	}
	return file, line, trace
}

// FromPanic builds a Fault from a value recovered from a panic. The stack
// argument is the output of runtime/debug.Stack captured at recovery time.
func FromPanic(v any, stack []byte) *Fault {
	f := &Fault{
		Kind:    fmt.Sprintf("%T", v),
		Message: fmt.Sprintf("%v", v),
	}
	if err, ok := v.(error); ok {
		f.Previous = From(err).Previous
	}
	if len(stack) > 0 {
		f.Trace = strings.Split(strings.TrimRight(string(stack), "\n"), "\n")
	}
	return f
}
