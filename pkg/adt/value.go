package adt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Value is a tagged-union container: exactly one declared variant is active
// at a time, bound to a non-nil payload. The container itself carries the
// reference semantics: every holder of the same *Value observes an in-place
// Mutate, while id and createdAt stay fixed for the container's lifetime.
type Value struct {
	enum      *Enum
	kind      string
	data      any
	mutable   bool
	createdAt time.Time
	id        uuid.UUID
}

func newValue(e *Enum, kind string, data any, mutable bool) *Value {
	return &Value{
		enum:      e,
		kind:      kind,
		data:      data,
		mutable:   mutable,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (v *Value) Enum() *Enum {
	return v.enum
}

// Kind returns the active variant name.
func (v *Value) Kind() string {
	return v.kind
}

// Data returns the active variant's payload, Unit for no-data variants.
func (v *Value) Data() any {
	return v.data
}

// Is reports whether kind is the active variant.
func (v *Value) Is(kind string) bool {
	return v != nil && v.kind == kind
}

// IsMutable reports whether Mutate may rewrite this value.
func (v *Value) IsMutable() bool {
	return v != nil && v.mutable
}

func (v *Value) Id() uuid.UUID {
	return v.id
}

func (v *Value) CreatedAt() time.Time {
	return v.createdAt
}

// Clone returns a new container with the same active variant, payload and
// mutability, under a fresh identity. The payload is shared, not copied.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	return newValue(v.enum, v.kind, v.data, v.mutable)
}

// Equal reports whether both values belong to the same enum and hold the
// same active variant with deeply equal payloads. Identity and mutability
// are metadata and take no part in equality.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.enum == other.enum && v.kind == other.kind && equalData(v.data, other.data)
}

func (v *Value) String() string {
	if v == nil || v.enum == nil {
		return "<nil>"
	}
	if _, unit := v.data.(Unit); unit {
		return fmt.Sprintf("%s.%s", v.enum.Name(), v.kind)
	}
	return fmt.Sprintf("%s.%s(%v)", v.enum.Name(), v.kind, v.data)
}
