package adt

import (
	"errors"
	"testing"
)

func TestMutate_RewritesInPlaceKeepingIdentity(t *testing.T) {
	t.Parallel()
	e := MustEnum("Conn", "Open", "Closed")
	v := e.MustVariant("Open").NewMut("10.0.0.1")
	id, created := v.Id(), v.CreatedAt()

	src := e.MustVariant("Closed").New("timeout")
	if err := Mutate(v, src); err != nil {
		t.Fatalf("expected mutate to succeed, got: %v", err)
	}

	if v.Kind() != "Closed" || v.Data() != any("timeout") {
		t.Fatalf("expected Closed(timeout), got %v", v)
	}
	if v.Id() != id || !v.CreatedAt().Equal(created) {
		t.Fatalf("identity must survive mutation")
	}
	if !v.IsMutable() {
		t.Fatalf("mutability must survive mutation")
	}
	if src.Kind() != "Closed" || src.Data() != any("timeout") {
		t.Fatalf("source must stay untouched")
	}
}

func TestMutate_SharedHoldersObserveChange(t *testing.T) {
	t.Parallel()
	e := MustEnum("Conn", "Open", "Closed")
	v := e.MustVariant("Open").NewMut(nil)

	holders := []*Value{v, v}
	if err := Mutate(v, e.MustVariant("Closed").New(nil)); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	for i, h := range holders {
		if !h.Is("Closed") {
			t.Fatalf("holder %d did not observe the mutation", i)
		}
	}
}

func TestMutate_ImmutableDestinationRejected(t *testing.T) {
	t.Parallel()
	e := MustEnum("Conn", "Open", "Closed")
	v := e.MustVariant("Open").New("addr")
	src := e.MustVariant("Closed").New(nil)

	err := Mutate(v, src)
	if !errors.Is(err, ErrImmutableValue) {
		t.Fatalf("expected ErrImmutableValue, got %v", err)
	}
	if !v.Is("Open") || v.Data() != any("addr") {
		t.Fatalf("failed mutate must leave destination unchanged, got %v", v)
	}
}

func TestMutate_EnumMismatchRejected(t *testing.T) {
	t.Parallel()
	conn := MustEnum("Conn", "Open", "Closed")
	light := MustEnum("Light", "Red", "Green")

	dst := conn.MustVariant("Open").NewMut(nil)
	src := light.MustVariant("Red").New(nil)

	err := Mutate(dst, src)
	if !errors.Is(err, ErrEnumMismatch) {
		t.Fatalf("expected ErrEnumMismatch, got %v", err)
	}
	if !dst.Is("Open") {
		t.Fatalf("failed mutate must leave destination unchanged")
	}
}

func TestMutate_NilValues(t *testing.T) {
	t.Parallel()
	e := MustEnum("Conn", "Open", "Closed")
	dst := e.MustVariant("Open").NewMut(nil)

	if err := Mutate(nil, dst); !errors.Is(err, ErrImmutableValue) {
		t.Fatalf("expected ErrImmutableValue for nil destination, got %v", err)
	}
	if err := Mutate(dst, nil); !errors.Is(err, ErrEnumMismatch) {
		t.Fatalf("expected ErrEnumMismatch for nil source, got %v", err)
	}
}

func TestMutate_RepeatedRewrites(t *testing.T) {
	t.Parallel()
	e := MustEnum("Door", "Open", "Closed", "Locked")
	v := e.MustVariant("Open").NewMut(nil)
	id := v.Id()

	for _, kind := range []string{"Closed", "Locked", "Open", "Closed"} {
		if err := Mutate(v, e.MustVariant(kind).New(nil)); err != nil {
			t.Fatalf("mutate to %s: %v", kind, err)
		}
		if !v.Is(kind) {
			t.Fatalf("expected %s after mutate, got %s", kind, v.Kind())
		}
	}
	if v.Id() != id {
		t.Fatalf("identity must be stable across repeated mutations")
	}
}
