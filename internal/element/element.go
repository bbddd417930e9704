// File: internal/element/element.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element lifecycle helpers shared by both buffer variants. The
// optional api.Cloner / api.Disposer hooks are the only points where
// an element's copy or destruction can fail.

package element

import "github.com/momentics/hioload-ring/api"

// Clone produces the caller's copy of v. Types implementing
// api.Cloner[T] control (and may fail) the copy; everything else is
// copied by assignment.
func Clone[T any](v T) (T, error) {
	if c, ok := any(v).(api.Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// Dispose runs the destruction hook of v, if it has one.
func Dispose[T any](v T) error {
	if d, ok := any(v).(api.Disposer); ok {
		return d.Dispose()
	}
	return nil
}
