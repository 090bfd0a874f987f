package splice

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates splice failures.
type ErrorKind uint8

const (
	// MissingMarker means a start or end marker line is absent.
	MissingMarker ErrorKind = iota + 1
	// MarkerOrder means the end marker does not follow the start marker.
	MarkerOrder
)

func (k ErrorKind) String() string {
	switch k {
	case MissingMarker:
		return "missing marker"
	case MarkerOrder:
		return "marker order"
	}
	return "unknown"
}

var (
	// ErrMissingMarker matches any MissingMarker Error via errors.Is.
	ErrMissingMarker = errors.New("marker not found")
	// ErrMarkerOrder matches any MarkerOrder Error via errors.Is.
	ErrMarkerOrder = errors.New("marker order invalid")
)

// Error describes why a region could not be spliced.
type Error struct {
	Kind   ErrorKind
	Marker string // the offending marker (start marker for MarkerOrder)
	Start  bool   // for MissingMarker: whether Marker is the start marker
	Doc    string // optional document name for messages
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	where := ""
	if e.Doc != "" {
		where = " in " + e.Doc
	}
	switch e.Kind {
	case MissingMarker:
		role := "end"
		if e.Start {
			role = "start"
		}
		return fmt.Sprintf("%s marker %s not found%s", role, e.Marker, where)
	case MarkerOrder:
		return fmt.Sprintf("marker order invalid for %s%s", e.Marker, where)
	}
	return "splice error" + where
}

// Is lets errors.Is match the package sentinels.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrMissingMarker:
		return e.Kind == MissingMarker
	case ErrMarkerOrder:
		return e.Kind == MarkerOrder
	}
	return false
}
