package reviews

import (
	"context"
	"investorshield/internal/store"
	"time"
)

type Store interface {
	Create(context.Context, *Review) error
	ListByAdvisor(ctx context.Context, advisorID string) ([]Review, error)
	All(context.Context) ([]Review, error)
}

type Repository struct {
	reviews *store.Collection[Review]
	now     func() time.Time
}

func NewRepository(reviews *store.Collection[Review], now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	return &Repository{reviews: reviews, now: now}
}

// Create appends the review, stamping its ID and timestamp.
func (r *Repository) Create(ctx context.Context, review *Review) error {
	created, err := r.reviews.Insert(ctx, func(id string) Review {
		rv := *review
		rv.ID = id
		rv.Timestamp = r.now()
		return rv
	})
	if err != nil {
		return err
	}

	*review = created
	return nil
}

func (r *Repository) ListByAdvisor(ctx context.Context, advisorID string) ([]Review, error) {
	return r.reviews.Filter(ctx, func(rv Review) bool { return rv.AdvisorID == advisorID })
}

// All returns every review in insertion order.
func (r *Repository) All(ctx context.Context) ([]Review, error) {
	return r.reviews.All(ctx)
}
