package adt_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ib-77/adt/pkg/adt"
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/result"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randOption returns Some of a random int or None, evenly.
func randOption(rng *rand.Rand) adt.Option[int] {
	if rng.IntN(2) == 0 {
		return adt.None[int]()
	}
	return adt.Some(randInt(rng))
}

// randResult returns Ok of a random int or a random failure, evenly.
func randResult(rng *rand.Rand) adt.Result[int, error] {
	if rng.IntN(2) == 0 {
		return adt.Err[int](errors.New("boom"))
	}
	return adt.Ok[error](randInt(rng))
}

// TestPropertyConstructOneActiveVariant: a constructed value is exactly its
// chosen variant, never any sibling.
func TestPropertyConstructOneActiveVariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	e := adt.MustEnum("Light", "Red", "Yellow", "Green")
	variants := e.Variants()
	for range propertyN {
		kind := variants[rng.IntN(len(variants))]
		v, err := e.Construct(kind, randInt(rng))
		if err != nil {
			t.Fatalf("construct %s: %v", kind, err)
		}
		active := 0
		for _, k := range variants {
			if v.Is(k) {
				active++
			}
		}
		if active != 1 || !v.Is(kind) {
			t.Fatalf("expected exactly %s active, got %d active", kind, active)
		}
	}
}

// TestPropertyMatchDeterministic: matching the same value twice with the
// same matcher selects the same arm and result.
func TestPropertyMatchDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	e := adt.MustEnum("Light", "Red", "Yellow", "Green")
	variants := e.Variants()
	m := adt.Matcher[string]{
		Arms: map[string]func(any) string{
			"Red":    func(any) string { return "stop" },
			"Yellow": func(any) string { return "wait" },
		},
		Else: func() string { return "go" },
	}
	for range propertyN {
		v, _ := e.Construct(variants[rng.IntN(len(variants))], nil)
		a, errA := adt.Match(v, m)
		b, errB := adt.Match(v, m)
		if a != b || (errA == nil) != (errB == nil) {
			t.Fatalf("match not deterministic: %q vs %q", a, b)
		}
	}
}

// TestPropertyMutateKeepsIdentity: any sequence of in-place rewrites leaves
// id and createdAt untouched while tracking the latest variant.
func TestPropertyMutateKeepsIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	e := adt.MustEnum("Door", "Open", "Closed", "Locked")
	variants := e.Variants()
	for range propertyN {
		v := e.MustVariant(variants[rng.IntN(len(variants))]).NewMut(nil)
		id, created := v.Id(), v.CreatedAt()
		for range rng.IntN(5) + 1 {
			kind := variants[rng.IntN(len(variants))]
			if err := adt.Mutate(v, e.MustVariant(kind).New(randInt(rng))); err != nil {
				t.Fatalf("mutate: %v", err)
			}
			if !v.Is(kind) {
				t.Fatalf("expected %s after mutate, got %s", kind, v.Kind())
			}
		}
		if v.Id() != id || !v.CreatedAt().Equal(created) {
			t.Fatalf("identity drifted across mutations")
		}
	}
}

// TestPropertyOptionMapComposition: Map(Map(o, f), g) ≡ Map(o, g∘f)
func TestPropertyOptionMapComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) int { return x * 3 }
	g := func(x int) int { return x - 7 }
	for range propertyN {
		o := randOption(rng)
		left := option.Map(option.Map(o, f), g)
		right := option.Map(o, func(x int) int { return g(f(x)) })
		if !left.Equal(right) {
			t.Fatalf("map composition broke: %v != %v (o=%v)", left, right, o)
		}
	}
}

// TestPropertyOptionAndThenShortCircuit: AndThen never runs its
// continuation on None and equals f(a) on Some(a).
func TestPropertyOptionAndThenShortCircuit(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := func(x int) adt.Option[int] {
		if x%2 == 0 {
			return adt.Some(x / 2)
		}
		return adt.None[int]()
	}
	for range propertyN {
		a := randInt(rng)
		if got := option.AndThen(adt.Some(a), f); !got.Equal(f(a)) {
			t.Fatalf("AndThen(Some(%d), f) != f(%d)", a, a)
		}
		ran := false
		got := option.AndThen(adt.None[int](), func(int) adt.Option[int] {
			ran = true
			return adt.Some(0)
		})
		if ran || !got.IsNone() {
			t.Fatalf("AndThen on None must not run the continuation")
		}
	}
}

// TestPropertyResultMapPreservesFailure: mapping over Err keeps the exact
// failure value.
func TestPropertyResultMapPreservesFailure(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		r := randResult(rng)
		mapped := result.Map(r, func(x int) int { return x + 1 })
		if r.IsErr() {
			if mapped.IsOk() || !errors.Is(mapped.UnwrapErr(), r.UnwrapErr()) {
				t.Fatalf("map must pass the failure through untouched")
			}
		} else if mapped.Unwrap() != r.Unwrap()+1 {
			t.Fatalf("map must transform the success value")
		}
	}
}

// TestPropertyOptionResultRoundTrip: Ok() after OkOr recovers the option.
func TestPropertyOptionResultRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sentinel := errors.New("empty")
	for range propertyN {
		o := randOption(rng)
		back := option.OkOr(o, sentinel).Ok()
		if !back.Equal(o) {
			t.Fatalf("round trip broke: %v != %v", back, o)
		}
	}
}

// TestPropertyXorCommutative: a.Xor(b) ≡ b.Xor(a) as observable content.
func TestPropertyXorCommutative(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a, b := randOption(rng), randOption(rng)
		if !a.Xor(b).Equal(b.Xor(a)) {
			t.Fatalf("xor not commutative for %v, %v", a, b)
		}
	}
}

// TestPropertyIterationMatchesState: iteration yields the value exactly
// when the option holds one.
func TestPropertyIterationMatchesState(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		o := randOption(rng)
		got := slices.Collect(o.Iter())
		if o.IsSome() {
			if len(got) != 1 || got[0] != o.Unwrap() {
				t.Fatalf("expected [%d], got %v", o.Unwrap(), got)
			}
		} else if len(got) != 0 {
			t.Fatalf("expected empty iteration, got %v", got)
		}
	}
}
