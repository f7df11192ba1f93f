package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims issued by the identity provider
type UserClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Identity is a verified caller
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}
