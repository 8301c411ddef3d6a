package adt

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// Variant names of the canonical Option enum.
const (
	KindSome = "Some"
	KindNone = "None"
)

// OptionEnum returns the shared declaration backing every Option, memoized
// across the process.
var OptionEnum = Memo(func() *Enum {
	return MustEnum("Option", KindSome, KindNone)
})

var (
	someVariant = Memo(func() Variant { return OptionEnum().MustVariant(KindSome) })
	noneVariant = Memo(func() Variant { return OptionEnum().MustVariant(KindNone) })
)

// Option holds either one value of type T (Some) or no value (None). It
// wraps a mutable enum cell; copies of an Option share the cell, so the
// in-place operations (GetOrInsert, Take, Replace) are observed through
// every copy while Id stays fixed. The zero Option has no cell: it reads as
// None and panics on the in-place operations.
//
// Type-changing combinators (Map, AndThen, OkOr, Zip, ...) live in the
// option subpackage.
type Option[T any] struct {
	v *Value
}

// Some returns an Option holding data.
func Some[T any](data T) Option[T] {
	return Option[T]{v: someVariant().NewMut(data)}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{v: noneVariant().NewMut(nil)}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.v.Is(KindSome)
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.IsSome()
}

// Kind returns KindSome or KindNone.
func (o Option[T]) Kind() string {
	if o.v == nil {
		return KindNone
	}
	return o.v.Kind()
}

// Unwrap returns the contained value, panicking on None.
func (o Option[T]) Unwrap() T {
	if !o.IsSome() {
		panic("adt: called Unwrap on a None Option")
	}
	return o.get()
}

// UnwrapOr returns the contained value, or fallback on None.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.IsSome() {
		return o.get()
	}
	return fallback
}

// UnwrapOrElse returns the contained value, or f() on None.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.IsSome() {
		return o.get()
	}
	return f()
}

// Or returns o when it holds a value, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.IsSome() {
		return o
	}
	return other
}

// OrElse returns o when it holds a value, otherwise f().
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.IsSome() {
		return o
	}
	return f()
}

// Xor returns whichever of o and other holds a value, or None when both or
// neither do.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.IsSome() && other.IsNone():
		return o
	case o.IsNone() && other.IsSome():
		return other
	default:
		return None[T]()
	}
}

// Filter keeps the value only when pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.IsSome() && pred(o.get()) {
		return o
	}
	return None[T]()
}

// GetOrInsert returns the contained value, first rewriting a None in place
// to hold data.
func (o Option[T]) GetOrInsert(data T) T {
	return o.GetOrInsertWith(func() T { return data })
}

// GetOrInsertWith returns the contained value, first rewriting a None in
// place to hold f().
func (o Option[T]) GetOrInsertWith(f func() T) T {
	if o.IsSome() {
		return o.get()
	}
	o.mutate(someVariant().NewMut(f()))
	return o.get()
}

// Take moves the content out into a fresh Option, leaving o empty. Taking
// from a None returns None and changes nothing.
func (o Option[T]) Take() Option[T] {
	if !o.IsSome() {
		return None[T]()
	}
	out := Some(o.get())
	o.mutate(noneVariant().NewMut(nil))
	return out
}

// Replace rewrites o in place to hold data, returning the previous content
// as a fresh Option.
func (o Option[T]) Replace(data T) Option[T] {
	out := None[T]()
	if o.IsSome() {
		out = Some(o.get())
	}
	o.mutate(someVariant().NewMut(data))
	return out
}

// Clone returns an Option over a fresh cell with the same content; the two
// no longer observe each other's in-place operations.
func (o Option[T]) Clone() Option[T] {
	if o.v == nil {
		return None[T]()
	}
	return Option[T]{v: o.v.Clone()}
}

// Iter yields the contained value, or nothing on None. Every range starts
// fresh and reads the cell at iteration time.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.IsSome() {
			yield(o.get())
		}
	}
}

// Equal reports whether both options hold the same variant with deeply
// equal contents. Identity takes no part in equality.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.IsSome() != other.IsSome() {
		return false
	}
	if o.IsNone() {
		return true
	}
	return equalData(o.v.Data(), other.v.Data())
}

func (o Option[T]) String() string {
	if o.v == nil {
		return KindNone
	}
	return MustMatch(o.v, Matcher[string]{Arms: map[string]func(any) string{
		KindSome: func(data any) string { return fmt.Sprintf("%s(%v)", KindSome, data) },
		KindNone: func(any) string { return KindNone },
	}})
}

// Id returns the identity of the underlying cell, stable across the
// in-place operations; uuid.Nil for the zero Option.
func (o Option[T]) Id() uuid.UUID {
	if o.v == nil {
		return uuid.Nil
	}
	return o.v.Id()
}

// CreatedAt returns the cell's construction time (UTC); zero for the zero
// Option.
func (o Option[T]) CreatedAt() time.Time {
	if o.v == nil {
		return time.Time{}
	}
	return o.v.CreatedAt()
}

func (o Option[T]) get() T {
	var zero T
	if o.v == nil {
		return zero
	}
	if _, unit := o.v.Data().(Unit); unit {
		return zero
	}
	t, _ := o.v.Data().(T)
	return t
}

func (o Option[T]) mutate(src *Value) {
	if o.v == nil {
		panic("adt: in-place operation on the zero Option")
	}
	if err := Mutate(o.v, src); err != nil {
		panic(err)
	}
}
