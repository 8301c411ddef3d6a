// Package result provides the type-changing combinators over
// adt.Result[T, E]. Methods on Result cannot introduce new type parameters,
// so every operation producing a different success or failure type lives
// here as a free function.
//
// Key operations:
// - Map/MapOr/MapOrElse: transform the success value (T -> U)
// - MapErr: transform the failure (E -> F)
// - And/AndThen: sequence results, short-circuiting on the first failure
// - Flatten: collapse Result[Result[T]] one level
// - Transpose: swap Result[Option] into Option[Result]
// - Try: lift Go's (value, error) return shape into a Result
// - Collect: gather a slice of results, stopping at the first failure
// - Partition: split a slice of results into successes and failures
package result
