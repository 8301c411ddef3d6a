package adt

import "sync"

// Memo returns f memoized: the first call computes the value, every later
// call returns it without re-running f. Safe for concurrent use. The
// canonical Option and Result declarations are shared through it.
func Memo[T any](f func() T) func() T {
	return sync.OnceValue(f)
}
