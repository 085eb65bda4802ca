package cmdtypes

import (
	"strconv"
	"strings"
)

// ArgSpec is an explicit arity override: the valid range of positional
// argument counts for a command. Max may be Unbounded.
type ArgSpec struct {
	Min int
	Max int
}

// ExactArgs returns a spec accepting exactly n arguments.
func ExactArgs(n int) ArgSpec {
	return ArgSpec{Min: n, Max: n}
}

// RangeArgs returns a spec accepting between min and max arguments.
// Pass Unbounded as max for no upper limit.
func RangeArgs(min, max int) ArgSpec {
	return ArgSpec{Min: min, Max: max}
}

// MinimumArgs returns a spec accepting min or more arguments.
func MinimumArgs(min int) ArgSpec {
	return ArgSpec{Min: min, Max: Unbounded}
}

// Validate checks the spec for a well-formed range.
func (a ArgSpec) Validate() error {
	if a.Min < 0 {
		return &InvalidArityError{Spec: a.String(), Reason: "minimum cannot be negative"}
	}
	if a.Max != Unbounded && a.Max < a.Min {
		return &InvalidArityError{Spec: a.String(), Reason: "minimum exceeds maximum"}
	}
	return nil
}

// String renders the spec in the shorthand accepted by ParseArgSpec.
func (a ArgSpec) String() string {
	if a.Max == Unbounded {
		return strconv.Itoa(a.Min) + ",*"
	}
	if a.Min == a.Max {
		return strconv.Itoa(a.Min)
	}
	return strconv.Itoa(a.Min) + "," + strconv.Itoa(a.Max)
}

// ParseArgSpec translates the legacy arity shorthand into an ArgSpec:
//
//	?     zero or one argument        (0, 1)
//	+     one or more arguments       (1, unbounded)
//	*     any number of arguments     (0, unbounded)
//	N     exactly N arguments         (N, N)
//	N,M   between N and M arguments   (N, M)
//	N,*   N or more arguments         (N, unbounded)
//
// Malformed text yields an InvalidArityError.
func ParseArgSpec(s string) (ArgSpec, error) {
	switch strings.TrimSpace(s) {
	case "":
		return ArgSpec{}, &InvalidArityError{Spec: s, Reason: "empty spec"}
	case "?":
		return ArgSpec{Min: 0, Max: 1}, nil
	case "+":
		return ArgSpec{Min: 1, Max: Unbounded}, nil
	case "*":
		return ArgSpec{Min: 0, Max: Unbounded}, nil
	}

	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return ArgSpec{}, &InvalidArityError{Spec: s, Reason: "not a number"}
		}
		spec := ExactArgs(n)
		if err := spec.Validate(); err != nil {
			return ArgSpec{}, err
		}
		return spec, nil
	case 2:
		min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return ArgSpec{}, &InvalidArityError{Spec: s, Reason: "minimum is not a number"}
		}
		maxPart := strings.TrimSpace(parts[1])
		max := Unbounded
		if maxPart != "*" {
			max, err = strconv.Atoi(maxPart)
			if err != nil {
				return ArgSpec{}, &InvalidArityError{Spec: s, Reason: "maximum is not a number"}
			}
		}
		spec := RangeArgs(min, max)
		if err := spec.Validate(); err != nil {
			return ArgSpec{}, err
		}
		return spec, nil
	default:
		return ArgSpec{}, &InvalidArityError{Spec: s, Reason: "expected min,max"}
	}
}
