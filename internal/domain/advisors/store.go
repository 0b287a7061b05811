package advisors

import (
	"context"
	"errors"
	"investorshield/internal/store"
	"strings"
)

type Store interface {
	Create(context.Context, *Advisor) error
	GetByID(context.Context, string) (*Advisor, error)
	GetByName(context.Context, string) (*Advisor, error)
	GetByRegNumber(context.Context, string) (*Advisor, error)
	List(ctx context.Context, limit int) ([]Advisor, error)
	All(context.Context) ([]Advisor, error)
}

type Repository struct {
	advisors *store.Collection[Advisor]
}

func NewRepository(advisors *store.Collection[Advisor]) Store {
	return &Repository{advisors: advisors}
}

func (r *Repository) Create(ctx context.Context, advisor *Advisor) error {
	created, err := r.advisors.Insert(ctx, func(id string) Advisor {
		a := *advisor
		a.ID = id
		return a
	})
	if err != nil {
		return err
	}

	*advisor = created
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Advisor, error) {
	a, err := r.advisors.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// GetByName returns the first advisor, in insertion order, whose name
// contains name case-insensitively.
func (r *Repository) GetByName(ctx context.Context, name string) (*Advisor, error) {
	needle := strings.ToLower(name)
	a, err := r.advisors.Find(ctx, func(a Advisor) bool {
		return strings.Contains(strings.ToLower(a.Name), needle)
	})
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *Repository) GetByRegNumber(ctx context.Context, regNumber string) (*Advisor, error) {
	a, err := r.advisors.Find(ctx, func(a Advisor) bool {
		return a.RegNumber.Valid && a.RegNumber.Value == regNumber
	})
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

// List returns the first limit advisors in insertion order.
func (r *Repository) List(ctx context.Context, limit int) ([]Advisor, error) {
	all, err := r.advisors.All(ctx)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		limit = 0
	}
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *Repository) All(ctx context.Context) ([]Advisor, error) {
	return r.advisors.All(ctx)
}

func translate(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
