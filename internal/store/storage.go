package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("resource not found")

// Collection is an in-memory keyed collection of records. Records are stored
// by value and scans always run in insertion order.
type Collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	newID func() string
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
		newID: func() string { return uuid.New().String() },
	}
}

// Insert generates a fresh identifier, builds the record with it and stores it.
func (c *Collection[T]) Insert(ctx context.Context, build func(id string) T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.insertLocked(build), nil
}

func (c *Collection[T]) insertLocked(build func(id string) T) T {
	id := c.newID()
	for {
		if _, taken := c.items[id]; !taken {
			break
		}
		id = c.newID()
	}

	item := build(id)
	c.items[id] = item
	c.order = append(c.order, id)
	return item
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return zero, ErrNotFound
	}
	return item, nil
}

// Find returns the first record, in insertion order, accepted by match.
func (c *Collection[T]) Find(ctx context.Context, match func(T) bool) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if item, ok := c.findLocked(match); ok {
		return item, nil
	}
	return zero, ErrNotFound
}

func (c *Collection[T]) findLocked(match func(T) bool) (T, bool) {
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindOrInsert returns the first record accepted by match or, when there is
// none, inserts the record produced by build. The check and the insert happen
// under one lock so concurrent callers converge on a single record.
func (c *Collection[T]) FindOrInsert(ctx context.Context, match func(T) bool, build func(id string) T) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.findLocked(match); ok {
		return item, false, nil
	}
	return c.insertLocked(build), true, nil
}

func (c *Collection[T]) Filter(ctx context.Context, match func(T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// All returns a snapshot of every record in insertion order.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	return c.Filter(ctx, func(T) bool { return true })
}
