package auth

import "github.com/golang-jwt/jwt/v5"

type Authenticator interface {
	GenerateToken(userID, email string) (string, error)
	ValidateAccessToken(token string) (*Claims, error)
}

// Claims identify the caller of an authenticated request.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
