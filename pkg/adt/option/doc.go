// Package option provides the type-changing combinators over adt.Option[T].
// Methods on Option cannot introduce new type parameters, so every
// operation producing a different value type lives here as a free function.
//
// Key operations:
// - Map/MapOr/MapOrElse: transform the contained value (T -> U)
// - And/AndThen: sequence options, short-circuiting on None
// - OkOr/OkOrElse: convert to a Result with a supplied failure
// - Flatten: collapse Option[Option[T]] one level
// - Zip/Unzip: pair and unpair two options
// - Transpose: swap Option[Result] into Result[Option]
// - From/FromPtr: lift plain Go values and pointers, mapping nil to None
// - Collect: gather a slice of options into an option of a slice
package option
