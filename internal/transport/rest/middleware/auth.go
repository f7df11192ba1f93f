package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"memorycompanion/internal/metrics"
	"memorycompanion/internal/model"
	"memorycompanion/internal/service"
)

type contextKey string

const (
	IdentityKey  contextKey = "identity"
	RequestIDKey contextKey = "requestId"
)

// AuthMiddleware provides bearer token authentication
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireUser validates the Authorization bearer token and stores the identity
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			metrics.InsightRequests.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
			writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		identity, err := m.authSvc.VerifyToken(token)
		if err != nil {
			metrics.InsightRequests.WithLabelValues(metrics.OutcomeUnauthorized).Inc()
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the verified identity from context
func GetIdentity(ctx context.Context) *model.Identity {
	if v, ok := ctx.Value(IdentityKey).(*model.Identity); ok {
		return v
	}
	return nil
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
