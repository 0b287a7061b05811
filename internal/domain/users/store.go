package users

import (
	"context"
	"errors"
	"investorshield/internal/store"
	"strings"
)

type Store interface {
	Create(ctx context.Context, user *User) error
	GetByID(context.Context, string) (*User, error)
	GetByEmail(context.Context, string) (*User, error)
}

type Repository struct {
	users *store.Collection[User]
}

func NewRepository(users *store.Collection[User]) Store {
	return &Repository{users: users}
}

// Create stores the user and fills in its ID. Emails are unique, compared
// case-insensitively.
func (r *Repository) Create(ctx context.Context, user *User) error {
	email := strings.TrimSpace(user.Email)

	created, isNew, err := r.users.FindOrInsert(ctx,
		func(u User) bool { return strings.EqualFold(u.Email, email) },
		func(id string) User {
			u := *user
			u.ID = id
			u.Email = email
			return u
		},
	)
	if err != nil {
		return err
	}
	if !isNew {
		return ErrDuplicateEmail
	}

	*user = created
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := r.users.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(email)
	u, err := r.users.Find(ctx, func(u User) bool { return strings.EqualFold(u.Email, email) })
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func translate(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
