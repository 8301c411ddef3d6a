package adt

import "fmt"

// Matcher maps variant names to handlers producing T. Else is the wildcard
// handler: when set, it covers every variant without an arm of its own.
type Matcher[T any] struct {
	// Arms holds one handler per variant name, invoked with the active
	// variant's payload
	Arms map[string]func(data any) T
	// Else handles any variant without an arm; nil claims exhaustiveness
	Else func() T
}

// Match invokes the handler registered for v's active variant, falling back
// to the wildcard when no arm covers it. A matcher covering neither, and
// any value without an active variant, yields an error wrapping
// ErrNonExhaustiveMatcher instead of a panic: values can reach a matcher
// from outside any static guarantee, so the failure stays recoverable.
func Match[T any](v *Value, m Matcher[T]) (T, error) {
	var zero T
	if v == nil || v.enum == nil || !v.enum.Has(v.kind) {
		return zero, fmt.Errorf("%w: value has no active variant", ErrNonExhaustiveMatcher)
	}
	if arm, ok := m.Arms[v.kind]; ok && arm != nil {
		return arm(v.data), nil
	}
	if m.Else != nil {
		return m.Else(), nil
	}
	return zero, fmt.Errorf("%w: no handler for %s.%s", ErrNonExhaustiveMatcher, v.enum.Name(), v.kind)
}

// MustMatch is Match panicking on a non-exhaustive matcher, for matchers
// the caller knows cover every variant.
func MustMatch[T any](v *Value, m Matcher[T]) T {
	t, err := Match(v, m)
	if err != nil {
		panic(err)
	}
	return t
}
