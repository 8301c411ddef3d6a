package chain

import (
	"context"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/result"
)

type Chain[T any] struct {
	ctx context.Context
	res adt.Result[T, error]
}

func Start[T any](ctx context.Context, r adt.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, adt.Ok[error](v))
}

func (c Chain[T]) Result() adt.Result[T, error] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then composes functions that already return adt.Result[T, error]
func (c Chain[T]) Then(onOk func(ctx context.Context, t T) adt.Result[T, error]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: result.Try(try(c.ctx, c.res.Unwrap()))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: adt.Ok[error](onOk(c.ctx, c.res.Unwrap()))}
}

func (c Chain[T]) RepeatUntil(onOk func(ctx context.Context, t T) adt.Result[T, error],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.res.IsErr() || until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

func (c Chain[T]) While(onOk func(ctx context.Context, t T) adt.Result[T, error],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for c.res.IsOk() && while(c.ctx, c.res.Unwrap()) {
		c = c.Then(onOk)
	}
	return c
}

func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onOk func(context.Context, T), onErr func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.UnwrapErr())
		}
		return c
	}

	if onOk != nil {
		onOk(c.ctx, c.res.Unwrap())
	}
	return c
}

// Finally collapses the chain to a final value via handlers
func (c Chain[T]) Finally(onOk func(context.Context, T) T, onErr func(context.Context, error) T) T {
	return Finally[T, T](c, onOk, onErr)
}

// Then switches the chain to a new value type via a Result-returning function
func Then[T, U any](c Chain[T], onOk func(context.Context, T) adt.Result[U, error]) Chain[U] {
	if c.res.IsErr() {
		return Chain[U]{ctx: c.ctx, res: adt.Err[U](c.res.UnwrapErr())}
	}
	return Chain[U]{ctx: c.ctx, res: onOk(c.ctx, c.res.Unwrap())}
}

// ThenTry switches the chain to a new value type via a function returning (U, error)
func ThenTry[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	if c.res.IsErr() {
		return Chain[U]{ctx: c.ctx, res: adt.Err[U](c.res.UnwrapErr())}
	}
	return Chain[U]{ctx: c.ctx, res: result.Try(try(c.ctx, c.res.Unwrap()))}
}

// Map switches the chain to a new value type via a pure transformation
func Map[T, U any](c Chain[T], onOk func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: result.Map(c.res, func(t T) U { return onOk(c.ctx, t) })}
}

// Finally collapses the chain into a final value of a new type
func Finally[T, U any](c Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	return result.MapOrElse(c.res,
		func(e error) U { return onErr(c.ctx, e) },
		func(t T) U { return onOk(c.ctx, t) })
}
