package storage

import (
	"investorshield/internal/domain/advisors"
	"investorshield/internal/domain/apps"
	"investorshield/internal/domain/reviews"
	"investorshield/internal/domain/users"
	"investorshield/internal/store"
	"time"
)

// Container groups the per-entity repositories backed by one in-memory store.
type Container struct {
	Users    users.Store
	Advisors advisors.Store
	Apps     apps.Store
	Reviews  reviews.Store
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used to timestamp reviews.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewContainer returns an empty container.
func NewContainer(opts ...Option) *Container {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Container{
		Users:    users.NewRepository(store.NewCollection[users.User]()),
		Advisors: advisors.NewRepository(store.NewCollection[advisors.Advisor]()),
		Apps:     apps.NewRepository(store.NewCollection[apps.App]()),
		Reviews:  reviews.NewRepository(store.NewCollection[reviews.Review](), o.now),
	}
}
