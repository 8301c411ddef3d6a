package adt

import "fmt"

// Mutate rewrites dst in place to hold src's active variant and payload.
// The dst container keeps its identity (pointer, id, createdAt) and its
// mutability, so every holder of dst observes the change; src is left
// untouched. dst must have been constructed with ConstructMut or NewMut and
// both values must belong to the same enum; otherwise dst stays unchanged
// and an error is returned.
func Mutate(dst, src *Value) error {
	if dst == nil {
		return fmt.Errorf("%w: nil value", ErrImmutableValue)
	}
	if !dst.mutable {
		return fmt.Errorf("%w: %s", ErrImmutableValue, dst)
	}
	if src == nil || src.enum == nil {
		return fmt.Errorf("%w: source has no enum", ErrEnumMismatch)
	}
	if dst.enum != src.enum {
		return fmt.Errorf("%w: %s vs %s", ErrEnumMismatch, dst.enum.Name(), src.enum.Name())
	}
	dst.kind = src.kind
	dst.data = src.data
	return nil
}
