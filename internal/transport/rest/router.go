package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	"memorycompanion/internal/config"
	"memorycompanion/internal/service"
	"memorycompanion/internal/transport/rest/handler"
	"memorycompanion/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	InsightService *service.InsightService
	CORS           config.CORSConfig
	Logger         *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	insightHandler := handler.NewInsightHandler(c.InsightService, c.Logger)
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS first so preflights never reach auth
	r.Use(corsMiddleware(c.CORS))
	r.Use(middleware.RequestID)
	r.Use(middleware.Observe(c.Logger))
	r.Use(middleware.Recover(c.Logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")

	v1 := r.PathPrefix("/v1").Subrouter()

	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)
	userRoutes.HandleFunc("/insights", insightHandler.Get).Methods("GET", "OPTIONS")

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, `{"error":"api documentation not registered"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func corsMiddleware(cfg config.CORSConfig) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.AllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
