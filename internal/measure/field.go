package measure

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Field identifies one of the three readings captured per measurement.
type Field uint8

const (
	// FieldSystolic is the systolic pressure in mmHg.
	FieldSystolic Field = iota
	// FieldDiastolic is the diastolic pressure in mmHg.
	FieldDiastolic
	// FieldPulse is the pulse rate in bpm.
	FieldPulse
)

// Fields lists every field in form order.
var Fields = []Field{FieldSystolic, FieldDiastolic, FieldPulse}

// String returns the input name of the field.
func (f Field) String() string {
	switch f {
	case FieldSystolic:
		return "systolic"
	case FieldDiastolic:
		return "diastolic"
	case FieldPulse:
		return "pulse"
	default:
		return fmt.Sprintf("field(%d)", uint8(f))
	}
}

// Label is the human-readable caption shown next to the input and on the chart.
func (f Field) Label() string {
	switch f {
	case FieldSystolic:
		return "Systolic Pressure (mmHg)"
	case FieldDiastolic:
		return "Diastolic Pressure (mmHg)"
	case FieldPulse:
		return "Pulse (bpm)"
	default:
		return f.String()
	}
}

func (f Field) requiredMessage() string {
	switch f {
	case FieldSystolic:
		return "Systolic pressure is required"
	case FieldDiastolic:
		return "Diastolic pressure is required"
	default:
		return "Pulse is required"
	}
}

// ParseField resolves a field by name. Unknown names wrap ErrUnknownField and
// suggest the closest known name.
func ParseField(name string) (Field, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Fields {
		if f.String() == normalized {
			return f, nil
		}
	}

	best, bestDist := "", -1
	for _, f := range Fields {
		d := levenshtein.ComputeDistance(normalized, f.String())
		if bestDist < 0 || d < bestDist {
			best, bestDist = f.String(), d
		}
	}
	if bestDist <= 3 {
		return 0, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownField, name, best)
	}
	return 0, fmt.Errorf("%w %q (expected systolic|diastolic|pulse)", ErrUnknownField, name)
}
