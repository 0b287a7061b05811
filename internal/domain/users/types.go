package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("a user with that email already exists")
)

type User struct {
	ID       string   `json:"id"`
	Email    string   `json:"email"`
	Password password `json:"-"` // Hide password
	Name     string   `json:"name"`
}

// Password struct to store the bcrypt hash
type password struct {
	hash []byte
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}
