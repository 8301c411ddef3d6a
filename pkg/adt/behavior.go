package adt

// Behavior couples an enum value with a table of named operations acting on
// it. Operations live in their own namespace, fully separate from variant
// names, so an operation can never shadow a variant.
type Behavior[O any] struct {
	val *Value
	ops O
}

// Attach couples v with an operation table, typically a struct of funcs
// taking the *Value they act on as their first argument. Operations are
// free to Match on the value and, when it is mutable, Mutate it in place.
func Attach[O any](v *Value, ops O) Behavior[O] {
	return Behavior[O]{val: v, ops: ops}
}

// Value returns the enum value the operations act on.
func (b Behavior[O]) Value() *Value {
	return b.val
}

// Ops returns the attached operation table.
func (b Behavior[O]) Ops() O {
	return b.ops
}

// Kind returns the active variant of the attached value.
func (b Behavior[O]) Kind() string {
	if b.val == nil {
		return ""
	}
	return b.val.Kind()
}
