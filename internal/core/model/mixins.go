package model

import (
	"time"
)

type WithID[T comparable] interface {
	ID() T
}

type WithLifecycle interface {
	CreatedAt() time.Time
	UpdatedAt() time.Time
}
