package driver

import "fmt"

// SourceReadError reports an input file that is absent or unreadable.
// Nothing has been written when it is returned.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }
