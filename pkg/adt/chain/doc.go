// Package chain provides a fluent wrapper around adt.Result[T, error] for
// building synchronous error-aware pipelines.
//
// It keeps a context.Context alongside the result and threads it through
// every handler, so steps can honor deadlines and carry request-scoped
// values without extra plumbing.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Then: compose a function that already returns a Result
// - ThenTry: call a function (T, error) and lift the error into the chain
// - Map: transform the success value
// - Ensure: run side effects without changing the result
// - RepeatUntil/While: loop a step while the chain stays successful
// - Or/And: combine alternative and required chains
// - Finally: collapse the chain into a final value via handlers
//
// Steps that change the value type (T -> U) are package-level functions:
// Then, ThenTry, Map and Finally mirror the methods with a second type
// parameter.
package chain
