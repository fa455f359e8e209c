package query

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilAccessor  = errors.New("filter has no field accessor")
	ErrEmptyField   = errors.New("filter has no field name")
	ErrNonFiniteMin = errors.New("range lower bound is not a finite number")
	ErrNonFiniteMax = errors.New("range upper bound is not a finite number")
)

// InvalidParameterError reports a malformed, out of range or non enumerated
// request parameter. It is always recoverable at the boundary.
type InvalidParameterError struct {
	Field  string
	Value  string
	Reason string
}

func (err InvalidParameterError) Error() string {
	var s strings.Builder
	s.WriteString("invalid parameter")
	if err.Field != "" {
		s.WriteString(fmt.Sprintf(" %q", err.Field))
	}
	if err.Value != "" {
		s.WriteString(fmt.Sprintf(" with value %q", err.Value))
	}
	if err.Reason != "" {
		s.WriteString(": " + err.Reason)
	}
	return s.String()
}

func invalidParam(field, value, reason string) error {
	return InvalidParameterError{Field: field, Value: value, Reason: reason}
}
