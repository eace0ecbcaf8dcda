package measure

import "errors"

// ErrUnknownField is returned when a field name is not one of systolic, diastolic or pulse.
var ErrUnknownField = errors.New("unknown measurement field")
