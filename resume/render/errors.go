package render

import "fmt"

// RenderError reports a failure inside a format renderer.
type RenderError struct {
	Format Format
	Cause  error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %s: %v", e.Format, e.Cause)
	}
	return fmt.Sprintf("render %s failed", e.Format)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
