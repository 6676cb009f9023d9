package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/clubedepontos/loyaltyhook/config"
	"github.com/clubedepontos/loyaltyhook/internal/models"
	"github.com/clubedepontos/loyaltyhook/internal/signature"
	"go.uber.org/zap"
)

// SignatureHeader carries the base64 HMAC-SHA256 of the raw request body.
const SignatureHeader = "X-Shopify-Hmac-Sha256"

// WebhookService runs the points pipeline for a parsed order.
type WebhookService interface {
	ProcessOrder(ctx context.Context, order *models.Order) (*models.OrderSummary, error)
}

// WebhookHandler represents HTTP handler for webhook-related requests
type WebhookHandler struct {
	svc      WebhookService
	verifier *signature.Verifier
	cfg      *config.Config
	logger   *zap.Logger
}

// NewWebhookHandler creates new WebhookHandler instance
func NewWebhookHandler(svc WebhookService, verifier *signature.Verifier, cfg *config.Config, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		svc:      svc,
		verifier: verifier,
		cfg:      cfg,
		logger:   logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type orderCreatedResponse struct {
	Success         bool    `json:"success"`
	Order           string  `json:"order"`
	Customer        int64   `json:"customer"`
	PointsDebited   float64 `json:"pointsDebited"`
	PointsAdded     float64 `json:"pointsAdded"`
	PreviousBalance float64 `json:"previousBalance"`
	NewBalance      float64 `json:"newBalance"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}

// OrderCreated handles the orders/created webhook.
// 200 — points applied, or a guest order with no loyalty effect.
// 400 — body is not valid JSON.
// 401 — missing or invalid HMAC signature.
// 405 — non-POST method.
// 500 — missing server configuration, or the balance write failed.
func (wh *WebhookHandler) OrderCreated() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
			return
		}

		// checked before any body consumption
		if wh.cfg.AdminGraphQLEndpoint == "" || wh.cfg.AdminAPIToken == "" || wh.cfg.WebhookSecret == "" {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server configuration error"})
			return
		}

		// the signature covers the exact bytes as transmitted, so the body
		// is captured once before any parsing
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
			return
		}
		defer r.Body.Close()

		if err := wh.verifier.Verify(raw, r.Header.Get(SignatureHeader)); err != nil {
			if errors.Is(err, models.ErrMissingSignature) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Missing HMAC header"})
				return
			}
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid HMAC"})
			return
		}

		var order models.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
			return
		}

		wh.logger.Info("order received",
			zap.String("order", order.Name),
			zap.String("topic", r.Header.Get("X-Shopify-Topic")),
			zap.String("shop", r.Header.Get("X-Shopify-Shop-Domain")))

		if order.Customer == nil {
			writeJSON(w, http.StatusOK, messageResponse{Message: "No customer associated with order"})
			return
		}

		summary, err := wh.svc.ProcessOrder(r.Context(), &order)
		if err != nil {
			wh.logger.Error("order processing failed",
				zap.Int64("order", order.ID),
				zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to update customer points"})
			return
		}

		writeJSON(w, http.StatusOK, orderCreatedResponse{
			Success:         true,
			Order:           summary.Order,
			Customer:        summary.Customer,
			PointsDebited:   summary.PointsDebited.InexactFloat64(),
			PointsAdded:     summary.PointsAdded.InexactFloat64(),
			PreviousBalance: summary.PreviousBalance.InexactFloat64(),
			NewBalance:      summary.NewBalance.InexactFloat64(),
		})
	}
}
