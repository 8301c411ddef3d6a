package adt

import "fmt"

// Wildcard is the reserved fallback name a Matcher uses for "any other
// variant". It can never be declared as a variant.
const Wildcard = "_"

// Unit is the payload of variants that carry no data. Payloads are never
// nil: construction and mutation normalize a nil payload to Unit, so "no
// payload" stays distinguishable from "payload happens to be nil".
type Unit struct{}

// Enum is an immutable declaration of a tagged union: a named, ordered set
// of variant names. Values are created from it with Construct and
// ConstructMut, or through per-variant handles obtained from Variant.
type Enum struct {
	name     string
	variants []string
	index    map[string]int
}

// NewEnum declares an enum with the given variants, kept in declaration
// order. Names must be non-empty and unique, and the wildcard is reserved.
func NewEnum(name string, variants ...string) (*Enum, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty enum name", ErrInvalidName)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoVariants, name)
	}
	index := make(map[string]int, len(variants))
	for i, v := range variants {
		if v == "" {
			return nil, fmt.Errorf("%w: empty variant name in %s", ErrInvalidName, name)
		}
		if v == Wildcard {
			return nil, fmt.Errorf("%w: %q in %s", ErrReservedVariant, Wildcard, name)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateVariant, name, v)
		}
		index[v] = i
	}
	return &Enum{
		name:     name,
		variants: append([]string(nil), variants...),
		index:    index,
	}, nil
}

// MustEnum is NewEnum panicking on a bad declaration.
func MustEnum(name string, variants ...string) *Enum {
	e, err := NewEnum(name, variants...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Enum) Name() string {
	return e.name
}

// Variants returns the variant names in declaration order.
func (e *Enum) Variants() []string {
	return append([]string(nil), e.variants...)
}

// Has reports whether kind is a declared variant.
func (e *Enum) Has(kind string) bool {
	_, ok := e.index[kind]
	return ok
}

// Construct creates an immutable value with kind as the active variant.
// A nil data payload is stored as Unit.
func (e *Enum) Construct(kind string, data any) (*Value, error) {
	return e.construct(kind, data, false)
}

// ConstructMut creates a value that Mutate may later rewrite in place.
func (e *Enum) ConstructMut(kind string, data any) (*Value, error) {
	return e.construct(kind, data, true)
}

func (e *Enum) construct(kind string, data any, mutable bool) (*Value, error) {
	if !e.Has(kind) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownVariant, e.name, kind)
	}
	if data == nil {
		data = Unit{}
	}
	return newValue(e, kind, data, mutable), nil
}

// Variant returns a constructor handle bound to one declared variant, so
// construction of that variant no longer needs name validation.
func (e *Enum) Variant(kind string) (Variant, error) {
	if !e.Has(kind) {
		return Variant{}, fmt.Errorf("%w: %s.%s", ErrUnknownVariant, e.name, kind)
	}
	return Variant{enum: e, kind: kind}, nil
}

// MustVariant is Variant panicking on an unknown kind.
func (e *Enum) MustVariant(kind string) Variant {
	vt, err := e.Variant(kind)
	if err != nil {
		panic(err)
	}
	return vt
}

// Variant is a pre-validated constructor handle for a single variant.
type Variant struct {
	enum *Enum
	kind string
}

func (vt Variant) Enum() *Enum {
	return vt.enum
}

func (vt Variant) Kind() string {
	return vt.kind
}

// New constructs an immutable value of this variant; nil data becomes Unit.
func (vt Variant) New(data any) *Value {
	return vt.construct(data, false)
}

// NewMut constructs a mutable value of this variant; nil data becomes Unit.
func (vt Variant) NewMut(data any) *Value {
	return vt.construct(data, true)
}

func (vt Variant) construct(data any, mutable bool) *Value {
	if vt.enum == nil {
		panic("adt: use of zero Variant handle")
	}
	if data == nil {
		data = Unit{}
	}
	return newValue(vt.enum, vt.kind, data, mutable)
}
