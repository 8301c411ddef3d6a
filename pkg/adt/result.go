package adt

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// Variant names of the canonical Result enum.
const (
	KindOk  = "Ok"
	KindErr = "Err"
)

// ResultEnum returns the shared declaration backing every Result, memoized
// across the process.
var ResultEnum = Memo(func() *Enum {
	return MustEnum("Result", KindOk, KindErr)
})

var (
	okVariant  = Memo(func() Variant { return ResultEnum().MustVariant(KindOk) })
	errVariant = Memo(func() Variant { return ResultEnum().MustVariant(KindErr) })
)

// Result holds either a success value of type T (Ok) or a failure of type E
// (Err). Like Option it wraps a mutable enum cell shared by copies. The
// zero Result has no cell: it reads as Err and its accessors return zero
// values.
//
// Type-changing combinators (Map, MapErr, AndThen, Try, Collect, ...) live
// in the result subpackage.
type Result[T any, E error] struct {
	v *Value
}

// Ok returns a successful Result holding data. The failure type goes first
// so the success type can be inferred from the argument: Ok[error](42).
func Ok[E error, T any](data T) Result[T, E] {
	return Result[T, E]{v: okVariant().NewMut(data)}
}

// Err returns a failed Result holding err. The success type goes first so
// the failure type can be inferred from the argument: Err[int](err).
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{v: errVariant().NewMut(err)}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.v.Is(KindOk)
}

// IsErr reports whether the result holds a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.IsOk()
}

// Kind returns KindOk or KindErr.
func (r Result[T, E]) Kind() string {
	if r.v == nil {
		return KindErr
	}
	return r.v.Kind()
}

// Ok converts to an Option over the success value, discarding the failure.
func (r Result[T, E]) Ok() Option[T] {
	if r.IsOk() {
		return Some(r.get())
	}
	return None[T]()
}

// Err converts to an Option over the failure, discarding the success value.
func (r Result[T, E]) Err() Option[E] {
	if r.IsOk() || r.v == nil {
		return None[E]()
	}
	return Some(r.getErr())
}

// Unwrap returns the success value. On Err it panics with the contained
// failure itself, preserving its diagnostic identity.
func (r Result[T, E]) Unwrap() T {
	if r.IsOk() {
		return r.get()
	}
	e := r.getErr()
	if any(e) == nil {
		panic("adt: called Unwrap on an Err Result holding no error")
	}
	panic(e)
}

// UnwrapErr returns the contained failure, panicking on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.IsOk() {
		panic("adt: called UnwrapErr on an Ok Result")
	}
	return r.getErr()
}

// UnwrapOr returns the success value, or fallback on Err.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.IsOk() {
		return r.get()
	}
	return fallback
}

// UnwrapOrElse returns the success value, or f of the failure on Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.IsOk() {
		return r.get()
	}
	return f(r.getErr())
}

// Or returns r when it holds a success value, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.IsOk() {
		return r
	}
	return other
}

// OrElse returns r when it holds a success value, otherwise f of the
// failure.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.IsOk() {
		return r
	}
	return f(r.getErr())
}

// Clone returns a Result over a fresh cell with the same content.
func (r Result[T, E]) Clone() Result[T, E] {
	if r.v == nil {
		return Result[T, E]{}
	}
	return Result[T, E]{v: r.v.Clone()}
}

// Iter yields the success value, or nothing on Err.
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.IsOk() {
			yield(r.get())
		}
	}
}

// Equal reports whether both results hold the same variant with deeply
// equal contents. Identity takes no part in equality.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.IsOk() != other.IsOk() {
		return false
	}
	if r.v == nil || other.v == nil {
		return r.v == other.v
	}
	return equalData(r.v.Data(), other.v.Data())
}

func (r Result[T, E]) String() string {
	if r.v == nil {
		return fmt.Sprintf("%s(<nil>)", KindErr)
	}
	return MustMatch(r.v, Matcher[string]{Arms: map[string]func(any) string{
		KindOk:  func(data any) string { return fmt.Sprintf("%s(%v)", KindOk, data) },
		KindErr: func(data any) string { return fmt.Sprintf("%s(%v)", KindErr, data) },
	}})
}

// Id returns the identity of the underlying cell; uuid.Nil for the zero
// Result.
func (r Result[T, E]) Id() uuid.UUID {
	if r.v == nil {
		return uuid.Nil
	}
	return r.v.Id()
}

// CreatedAt returns the cell's construction time (UTC); zero for the zero
// Result.
func (r Result[T, E]) CreatedAt() time.Time {
	if r.v == nil {
		return time.Time{}
	}
	return r.v.CreatedAt()
}

func (r Result[T, E]) get() T {
	var zero T
	if r.v == nil {
		return zero
	}
	if _, unit := r.v.Data().(Unit); unit {
		return zero
	}
	t, _ := r.v.Data().(T)
	return t
}

func (r Result[T, E]) getErr() E {
	var zero E
	if r.v == nil {
		return zero
	}
	if _, unit := r.v.Data().(Unit); unit {
		return zero
	}
	e, _ := r.v.Data().(E)
	return e
}
