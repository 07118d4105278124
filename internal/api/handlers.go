package api

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/tinysteps/backend/internal/auth"
	"github.com/tinysteps/backend/internal/cache"
	"github.com/tinysteps/backend/internal/decompose"
	"github.com/tinysteps/backend/internal/middleware"
	"github.com/tinysteps/backend/internal/model"
	"github.com/tinysteps/backend/internal/pkg/json"
	"github.com/tinysteps/backend/internal/ratelimit"
)

const (
	maxTaskLength = 500
	maxStepLength = 300
)

// DeviceStore records durable device rows. Best effort: a write failure is
// logged and never blocks the response.
type DeviceStore interface {
	Register(ctx context.Context, deviceID string) (*model.Device, error)
	SetPremium(ctx context.Context, deviceID string, premium bool) error
}

// Handler contains all API handlers
type Handler struct {
	tokens     *auth.Service
	limiter    *ratelimit.Limiter
	cache      *cache.Cache
	decomposer *decompose.Service
	devices    DeviceStore
}

// NewHandler creates a new API handler
func NewHandler(
	tokens *auth.Service,
	limiter *ratelimit.Limiter,
	resultCache *cache.Cache,
	decomposer *decompose.Service,
	devices DeviceStore,
) *Handler {
	return &Handler{
		tokens:     tokens,
		limiter:    limiter,
		cache:      resultCache,
		decomposer: decomposer,
		devices:    devices,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			log.Printf("failed to encode response: %v", err)
			return
		}
		_, _ = w.Write(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"success": false, "error": message})
}

func decodeBody(r *http.Request, v interface{}) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Health godoc
// @Summary Health check
// @Description Report service liveness
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Register godoc
// @Summary Register a new device
// @Description Generate an anonymous device identity and a signed token for it
// @Tags Devices
// @Produce json
// @Success 200 {object} model.RegisterResponse
// @Failure 500 {object} map[string]string "Server error"
// @Router /v1/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	deviceID, err := auth.GenerateDeviceID()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate device identity")
		return
	}

	token, err := h.tokens.Issue(deviceID, false, "", 0)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	if _, err := h.devices.Register(r.Context(), deviceID); err != nil {
		log.Printf("Register: failed to persist device record: %v", err)
	}

	respondJSON(w, http.StatusOK, model.RegisterResponse{
		Success:  true,
		Token:    token,
		DeviceID: deviceID,
	})
}

// Decompose godoc
// @Summary Decompose a task into steps
// @Description Break a free-text task into small timed steps, serving cached results when available
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body model.DecomposeRequest true "Task to decompose"
// @Success 200 {object} model.DecomposeResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Daily limit reached"
// @Security BearerAuth
// @Router /v1/decompose [post]
func (h *Handler) Decompose(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req model.DecomposeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Task = strings.TrimSpace(req.Task)
	if req.Task == "" || len(req.Task) > maxTaskLength {
		respondError(w, http.StatusBadRequest, "Invalid request: task is required (max 500 chars)")
		return
	}
	if req.Style != "" && !req.Style.Valid() {
		respondError(w, http.StatusBadRequest, "Invalid request: unknown style")
		return
	}
	if req.Style == "" {
		req.Style = model.StyleStandard
	}

	status, err := h.limiter.Check(r.Context(), claims.DeviceID, claims.IsPremium)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to check usage")
		return
	}
	if !status.Allowed {
		respondJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"success": false,
			"error":   "Daily limit reached",
			"usage": model.UsageInfo{
				Used:     status.Used,
				Limit:    status.Limit,
				ResetsAt: status.ResetsAt,
			},
		})
		return
	}

	// Cache hits still count against the free quota to keep cache farming
	// from bypassing it.
	cached, hit, err := h.cache.Get(r.Context(), req.Task, req.Style)
	if err != nil {
		log.Printf("Decompose: cache read failed: %v", err)
	}
	if hit {
		h.chargeUsage(r.Context(), claims)
		respondJSON(w, http.StatusOK, cached)
		return
	}

	breakdown, err := h.decomposer.Decompose(r.Context(), &req)
	if err != nil {
		// Provider failures are a success:false envelope, not an HTTP error.
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	resp := &model.DecomposeResponse{Success: true, Task: breakdown, Cached: false}

	if err := h.cache.Put(r.Context(), req.Task, req.Style, resp); err != nil {
		log.Printf("Decompose: cache write failed: %v", err)
	}
	h.chargeUsage(r.Context(), claims)

	respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) chargeUsage(ctx context.Context, claims *model.TokenClaims) {
	if claims.IsPremium {
		return
	}
	if err := h.limiter.Increment(ctx, claims.DeviceID); err != nil {
		log.Printf("Decompose: usage increment failed for %s: %v", claims.DeviceID, err)
	}
}

// Usage godoc
// @Summary Get usage stats
// @Description Report today's usage against the daily quota
// @Tags Devices
// @Produce json
// @Success 200 {object} model.UsageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /v1/usage [get]
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.limiter.Stats(r.Context(), claims.DeviceID, claims.IsPremium)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read usage")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// VerifySubscription godoc
// @Summary Verify subscription status
// @Description Placeholder: answers with the caller's current premium status until receipt verification lands
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} model.SubscriptionStatusResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /v1/verify-subscription [post]
func (h *Handler) VerifySubscription(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		RevenueCatUserID string `json:"revenueCatUserId"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// TODO: call the RevenueCat subscribers API once billing credentials are
	// provisioned; until then the claim in the token is all we have.
	respondJSON(w, http.StatusOK, model.SubscriptionStatusResponse{
		Success:   true,
		IsPremium: claims.IsPremium,
		Message:   "RevenueCat verification not yet implemented",
	})
}

// UpgradeWebhook godoc
// @Summary Premium upgrade webhook
// @Description Reissue the caller's token with the premium claim set
// @Tags Billing
// @Produce json
// @Success 200 {object} model.UpgradeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Security BearerAuth
// @Router /v1/webhook/revenuecat [post]
func (h *Handler) UpgradeWebhook(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Trust gap: nothing verifies this request actually came from the
	// billing provider beyond the bearer token itself.
	token, err := h.tokens.Issue(claims.DeviceID, true, claims.UserID, 0)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	if err := h.devices.SetPremium(r.Context(), claims.DeviceID, true); err != nil {
		log.Printf("UpgradeWebhook: failed to persist premium status: %v", err)
	}

	respondJSON(w, http.StatusOK, model.UpgradeResponse{
		Success:   true,
		Token:     token,
		IsPremium: true,
	})
}

// SubSteps godoc
// @Summary Break a stuck step into micro-actions
// @Description Decompose one step into 3-5 tiny actions to make starting effortless
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body model.SubStepsRequest true "Step the user is stuck on"
// @Success 200 {object} model.SubStepsResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /v1/substeps [post]
func (h *Handler) SubSteps(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req model.SubStepsRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	req.Step = strings.TrimSpace(req.Step)
	if req.Step == "" {
		respondError(w, http.StatusBadRequest, "Invalid request: step is required")
		return
	}
	if len(req.Step) > maxStepLength {
		respondError(w, http.StatusBadRequest, "Step text too long (max 300 chars)")
		return
	}

	result, err := h.decomposer.SubSteps(r.Context(), req.Step, req.TaskContext)
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// NotFound is the fallback for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "Not found")
}
