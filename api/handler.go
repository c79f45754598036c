// Package api - HTTP handlers for membership pricing
// Handlers wrap the engine - they contain NO pricing logic.
// All logic is delegated to core packages.
package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gym-cost/core/pricing"
	"gym-cost/internal/logging"
)

// Handler handles pricing requests
type Handler struct {
	engine *pricing.Engine
}

// NewHandler creates a new handler
func NewHandler(engine *pricing.Engine) *Handler {
	return &Handler{engine: engine}
}

// HandleQuote handles POST /quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, requestID, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	quote := h.engine.CalculateTotalCost(req.Plan, req.Features, req.GroupSize)
	status := http.StatusOK
	if !quote.Valid {
		status = http.StatusUnprocessableEntity
	}

	logging.Info("quote request",
		zap.String("request_id", requestID),
		zap.String("plan", req.Plan),
		zap.Bool("valid", quote.Valid))

	h.writeJSON(w, &QuoteResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Quote:     quote,
	}, status)
}

// HandleMembership handles POST /memberships
func (h *Handler) HandleMembership(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, requestID, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	total := h.engine.ProcessMembership(req.Plan, req.Features, req.GroupSize, req.Confirmed)

	logging.Info("membership request",
		zap.String("request_id", requestID),
		zap.String("plan", req.Plan),
		zap.Int64("total", total))

	h.writeJSON(w, &MembershipResponse{
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Total:     total,
		Confirmed: req.Confirmed && total >= 0,
	}, http.StatusOK)
}

// HandlePlans handles GET /plans
func (h *Handler) HandlePlans(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, &CatalogResponse{Plans: h.engine.Catalog().Plans()}, http.StatusOK)
}

// HandleFeatures handles GET /features
func (h *Handler) HandleFeatures(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, &CatalogResponse{Features: h.engine.Catalog().Features()}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, payload interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (h *Handler) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	h.writeJSON(w, &ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	}, status)
}

func generateRequestID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "req-unknown"
	}
	return "req-" + hex.EncodeToString(b[:])
}
