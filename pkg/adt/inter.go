package adt

import (
	"time"

	"github.com/google/uuid"
)

type Tagged interface {
	// Kind returns the active variant name
	Kind() string
}

type Identified interface {
	// Id returns the container identity assigned at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

type Cloner[T any] interface {
	// Clone returns a copy with fresh identity and equal content
	Clone() T
}
