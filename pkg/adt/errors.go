package adt

import "errors"

var (
	// ErrNonExhaustiveMatcher is returned by Match when neither an arm nor
	// the wildcard covers the active variant, or when the value itself has
	// no active variant.
	ErrNonExhaustiveMatcher = errors.New("adt: non-exhaustive matcher")

	// ErrImmutableValue is returned by Mutate when the destination was not
	// constructed as mutable.
	ErrImmutableValue = errors.New("adt: value is not mutable")

	// ErrEnumMismatch is returned by Mutate when source and destination
	// belong to different enum declarations.
	ErrEnumMismatch = errors.New("adt: values belong to different enums")

	// ErrUnknownVariant is returned when a variant name is not part of the
	// enum declaration.
	ErrUnknownVariant = errors.New("adt: unknown variant")

	// ErrInvalidName rejects empty enum or variant names at declaration.
	ErrInvalidName = errors.New("adt: invalid enum or variant name")

	// ErrNoVariants rejects enum declarations with an empty variant set.
	ErrNoVariants = errors.New("adt: enum declares no variants")

	// ErrDuplicateVariant rejects enum declarations with repeated names.
	ErrDuplicateVariant = errors.New("adt: duplicate variant name")

	// ErrReservedVariant rejects the wildcard name in declarations.
	ErrReservedVariant = errors.New("adt: reserved variant name")
)
