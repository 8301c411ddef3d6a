package option

import "github.com/ib-77/adt/pkg/adt"

// Map transforms the contained value with f, preserving None.
func Map[T, U any](o adt.Option[T], f func(T) U) adt.Option[U] {
	if o.IsSome() {
		return adt.Some(f(o.Unwrap()))
	}
	return adt.None[U]()
}

// MapOr returns f of the contained value, or fallback on None.
func MapOr[T, U any](o adt.Option[T], fallback U, f func(T) U) U {
	if o.IsSome() {
		return f(o.Unwrap())
	}
	return fallback
}

// MapOrElse returns f of the contained value, or fallback() on None.
func MapOrElse[T, U any](o adt.Option[T], fallback func() U, f func(T) U) U {
	if o.IsSome() {
		return f(o.Unwrap())
	}
	return fallback()
}

// And returns other when o holds a value, None otherwise.
func And[T, U any](o adt.Option[T], other adt.Option[U]) adt.Option[U] {
	if o.IsSome() {
		return other
	}
	return adt.None[U]()
}

// AndThen chains f over the contained value, preserving None.
func AndThen[T, U any](o adt.Option[T], f func(T) adt.Option[U]) adt.Option[U] {
	if o.IsSome() {
		return f(o.Unwrap())
	}
	return adt.None[U]()
}

// OkOr converts to a Result, using err as the failure on None.
func OkOr[T any, E error](o adt.Option[T], err E) adt.Result[T, E] {
	if o.IsSome() {
		return adt.Ok[E](o.Unwrap())
	}
	return adt.Err[T](err)
}

// OkOrElse converts to a Result, computing the failure on None.
func OkOrElse[T any, E error](o adt.Option[T], f func() E) adt.Result[T, E] {
	if o.IsSome() {
		return adt.Ok[E](o.Unwrap())
	}
	return adt.Err[T](f())
}

// Flatten removes one level of nesting.
func Flatten[T any](o adt.Option[adt.Option[T]]) adt.Option[T] {
	if o.IsSome() {
		return o.Unwrap()
	}
	return adt.None[T]()
}

// Zip pairs two values, or returns None when either side is empty.
func Zip[T, U any](a adt.Option[T], b adt.Option[U]) adt.Option[adt.Pair[T, U]] {
	if a.IsSome() && b.IsSome() {
		return adt.Some(adt.Pair[T, U]{Fst: a.Unwrap(), Snd: b.Unwrap()})
	}
	return adt.None[adt.Pair[T, U]]()
}

// Unzip splits an option of a pair into a pair of options.
func Unzip[T, U any](o adt.Option[adt.Pair[T, U]]) (adt.Option[T], adt.Option[U]) {
	if o.IsSome() {
		p := o.Unwrap()
		return adt.Some(p.Fst), adt.Some(p.Snd)
	}
	return adt.None[T](), adt.None[U]()
}

// Transpose swaps an Option of a Result into a Result of an Option: None
// becomes Ok(None), Some(Ok(v)) becomes Ok(Some(v)) and Some(Err(e)) keeps
// the failure.
func Transpose[T any, E error](o adt.Option[adt.Result[T, E]]) adt.Result[adt.Option[T], E] {
	if o.IsNone() {
		return adt.Ok[E](adt.None[T]())
	}
	r := o.Unwrap()
	if r.IsOk() {
		return adt.Ok[E](adt.Some(r.Unwrap()))
	}
	return adt.Err[adt.Option[T]](r.UnwrapErr())
}

// From lifts a plain Go value, returning None for either of Go's absence
// forms (untyped nil or a typed nil pointer) and Some otherwise.
func From[T any](v T) adt.Option[T] {
	if adt.IsNil(v) {
		return adt.None[T]()
	}
	return adt.Some(v)
}

// FromPtr returns Some of the pointed-to value, or None for nil.
func FromPtr[T any](p *T) adt.Option[T] {
	if p == nil {
		return adt.None[T]()
	}
	return adt.Some(*p)
}

// Collect gathers all contained values in order, or returns None when any
// element is empty.
func Collect[T any](opts []adt.Option[T]) adt.Option[[]T] {
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.IsNone() {
			return adt.None[[]T]()
		}
		out = append(out, o.Unwrap())
	}
	return adt.Some(out)
}
