package apps

import (
	"context"
	"errors"
	"investorshield/internal/store"
	"strings"
)

type Store interface {
	Create(context.Context, *App) error
	GetByID(context.Context, string) (*App, error)
	GetByName(context.Context, string) (*App, error)
	FindOrCreate(ctx context.Context, name string, build func() App) (*App, bool, error)
	ListLegitimate(context.Context) ([]App, error)
}

type Repository struct {
	apps *store.Collection[App]
}

func NewRepository(apps *store.Collection[App]) Store {
	return &Repository{apps: apps}
}

func (r *Repository) Create(ctx context.Context, app *App) error {
	created, err := r.apps.Insert(ctx, withID(*app))
	if err != nil {
		return err
	}

	*app = created.clone()
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*App, error) {
	a, err := r.apps.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	a = a.clone()
	return &a, nil
}

// GetByName returns the first app, in insertion order, whose name contains
// name case-insensitively.
func (r *Repository) GetByName(ctx context.Context, name string) (*App, error) {
	a, err := r.apps.Find(ctx, nameMatcher(name))
	if err != nil {
		return nil, translate(err)
	}
	a = a.clone()
	return &a, nil
}

// FindOrCreate behaves like GetByName and, when nothing matches, stores the
// app produced by build. The boolean reports whether a record was created.
func (r *Repository) FindOrCreate(ctx context.Context, name string, build func() App) (*App, bool, error) {
	a, created, err := r.apps.FindOrInsert(ctx, nameMatcher(name), func(id string) App {
		return withID(build())(id)
	})
	if err != nil {
		return nil, false, err
	}
	a = a.clone()
	return &a, created, nil
}

func (r *Repository) ListLegitimate(ctx context.Context) ([]App, error) {
	legit, err := r.apps.Filter(ctx, func(a App) bool { return a.IsLegit })
	if err != nil {
		return nil, err
	}
	for i := range legit {
		legit[i] = legit[i].clone()
	}
	return legit, nil
}

func nameMatcher(name string) func(App) bool {
	needle := strings.ToLower(name)
	return func(a App) bool {
		return strings.Contains(strings.ToLower(a.AppName), needle)
	}
}

func withID(app App) func(id string) App {
	return func(id string) App {
		a := app.clone()
		a.ID = id
		return a
	}
}

func translate(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
