package result

import "github.com/ib-77/adt/pkg/adt"

// Map transforms the success value with f, passing failures through
// untouched.
func Map[T, U any, E error](r adt.Result[T, E], f func(T) U) adt.Result[U, E] {
	if r.IsOk() {
		return adt.Ok[E](f(r.Unwrap()))
	}
	return adt.Err[U](r.UnwrapErr())
}

// MapErr transforms the failure with f, passing success values through
// untouched.
func MapErr[T any, E, F error](r adt.Result[T, E], f func(E) F) adt.Result[T, F] {
	if r.IsOk() {
		return adt.Ok[F](r.Unwrap())
	}
	return adt.Err[T](f(r.UnwrapErr()))
}

// MapOr returns f of the success value, or fallback on Err.
func MapOr[T, U any, E error](r adt.Result[T, E], fallback U, f func(T) U) U {
	if r.IsOk() {
		return f(r.Unwrap())
	}
	return fallback
}

// MapOrElse returns f of the success value, or fallback of the failure.
func MapOrElse[T, U any, E error](r adt.Result[T, E], fallback func(E) U, f func(T) U) U {
	if r.IsOk() {
		return f(r.Unwrap())
	}
	return fallback(r.UnwrapErr())
}

// And returns other when r holds a success value, otherwise r's failure.
func And[T, U any, E error](r adt.Result[T, E], other adt.Result[U, E]) adt.Result[U, E] {
	if r.IsOk() {
		return other
	}
	return adt.Err[U](r.UnwrapErr())
}

// AndThen chains f over the success value, short-circuiting on failure.
func AndThen[T, U any, E error](r adt.Result[T, E], f func(T) adt.Result[U, E]) adt.Result[U, E] {
	if r.IsOk() {
		return f(r.Unwrap())
	}
	return adt.Err[U](r.UnwrapErr())
}

// Flatten removes one level of nesting.
func Flatten[T any, E error](r adt.Result[adt.Result[T, E], E]) adt.Result[T, E] {
	if r.IsOk() {
		return r.Unwrap()
	}
	return adt.Err[T](r.UnwrapErr())
}

// Transpose swaps a Result of an Option into an Option of a Result:
// Ok(None) becomes None, Ok(Some(v)) becomes Some(Ok(v)) and Err(e) becomes
// Some(Err(e)).
func Transpose[T any, E error](r adt.Result[adt.Option[T], E]) adt.Option[adt.Result[T, E]] {
	if r.IsErr() {
		return adt.Some(adt.Err[T](r.UnwrapErr()))
	}
	o := r.Unwrap()
	if o.IsNone() {
		return adt.None[adt.Result[T, E]]()
	}
	return adt.Some(adt.Ok[E](o.Unwrap()))
}

// Try lifts Go's (value, error) return shape into a Result.
func Try[T any](v T, err error) adt.Result[T, error] {
	if err != nil {
		return adt.Err[T](err)
	}
	return adt.Ok[error](v)
}

// Collect gathers all success values in order, short-circuiting on the
// first failure encountered.
func Collect[T any, E error](results []adt.Result[T, E]) adt.Result[[]T, E] {
	out := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsErr() {
			return adt.Err[[]T](r.UnwrapErr())
		}
		out = append(out, r.Unwrap())
	}
	return adt.Ok[E](out)
}

// Partition splits results into success values and failures, keeping the
// order within each side.
func Partition[T any, E error](results []adt.Result[T, E]) ([]T, []E) {
	oks := make([]T, 0, len(results))
	var errs []E
	for _, r := range results {
		if r.IsOk() {
			oks = append(oks, r.Unwrap())
		} else {
			errs = append(errs, r.UnwrapErr())
		}
	}
	return oks, errs
}
