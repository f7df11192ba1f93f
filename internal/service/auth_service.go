package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"memorycompanion/internal/model"
)

// AuthService verifies bearer tokens issued by the identity provider
type AuthService struct {
	jwtSecret []byte
	audience  string
}

// NewAuthService creates a new auth service. An empty audience disables the aud check.
func NewAuthService(secret, audience string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		audience:  audience,
	}
}

// VerifyToken validates an HS256 token and returns the caller's identity
func (s *AuthService) VerifyToken(tokenString string) (*model.Identity, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Subjects are identity-provider user UUIDs
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrInvalidToken
	}

	return &model.Identity{UserID: claims.Subject, Email: claims.Email}, nil
}

// IssueToken signs a token for userID. Used by local tooling and tests.
func (s *AuthService) IssueToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.UserClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
