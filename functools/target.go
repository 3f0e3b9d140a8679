package functools

import "fmt"

// Target selects which part of a dict entry a transform applies to.
// The zero value behaves like [TargetValues].
type Target string

const (
	// TargetKeys maps keys and leaves values unchanged.
	TargetKeys Target = "keys"
	// TargetValues maps values and leaves keys unchanged.
	TargetValues Target = "values"
	// TargetItems maps both keys and values.
	TargetItems Target = "items"
)

// resolve applies the default and validates t.
func (t Target) resolve() (Target, bool) {
	switch t {
	case "":
		return TargetValues, true
	case TargetKeys, TargetValues, TargetItems:
		return t, true
	default:
		return t, false
	}
}

// Valid reports whether t is empty or one of the three selectors.
func (t Target) Valid() bool {
	_, ok := t.resolve()
	return ok
}

// ParseTarget converts s into a Target. An empty string yields
// [TargetValues].
func ParseTarget(s string) (Target, error) {
	t, ok := Target(s).resolve()
	if !ok {
		return "", fmt.Errorf("%w: %q (want keys, values or items)", ErrInvalidTarget, s)
	}
	return t, nil
}
