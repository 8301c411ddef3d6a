package adt

// Pair holds two values of independent types.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
