package opts

import (
	"errors"
	"fmt"
)

// ParamError reports a filter option whose value fell outside the range the
// API accepts. It is only produced by Build; setters never validate.
type ParamError struct {
	Param string
	Value any
	Min   any
	Max   any
}

var _ error = &ParamError{}

func (e *ParamError) Error() string {
	return fmt.Sprintf(
		"'%v' for parameter '%s' is outside bounds: [%v, %v]",
		e.Value, e.Param, e.Min, e.Max,
	)
}

func (e *ParamError) Is(other error) bool {
	var err *ParamError
	return errors.As(other, &err) && err != nil
}
