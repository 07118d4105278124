package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/tinysteps/backend/internal/middleware"
)

// NewRouter creates a new HTTP router with all routes
func NewRouter(h *Handler, auth *middleware.AuthMiddleware) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Public routes
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /v1/register", h.Register)

	// Protected routes
	mux.Handle("POST /v1/decompose", auth.Authenticate(http.HandlerFunc(h.Decompose)))
	mux.Handle("GET /v1/usage", auth.Authenticate(http.HandlerFunc(h.Usage)))
	mux.Handle("POST /v1/verify-subscription", auth.Authenticate(http.HandlerFunc(h.VerifySubscription)))
	mux.Handle("POST /v1/substeps", auth.Authenticate(http.HandlerFunc(h.SubSteps)))
	mux.Handle("POST /v1/webhook/revenuecat", auth.Authenticate(http.HandlerFunc(h.UpgradeWebhook)))

	// Fallback
	mux.HandleFunc("/", h.NotFound)

	// Apply global middleware
	handler := middleware.CORS(middleware.JSON(middleware.Logger(middleware.Recovery(mux))))

	return handler
}
