package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubedepontos/loyaltyhook/internal/models"
	"github.com/clubedepontos/loyaltyhook/internal/points"
	"github.com/clubedepontos/loyaltyhook/internal/shopify"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// annotation appended to every order evaluated by the points system
const orderNoteText = "pagamento avaliado pelo sistema de pontos"

// CustomerStore is interface for the remote service of record holding
// customer loyalty fields and order annotations.
type CustomerStore interface {
	// CustomerPoints returns current points balance
	CustomerPoints(ctx context.Context, customerGID string) (decimal.Decimal, error)
	// CustomerClubLevel returns current club level
	CustomerClubLevel(ctx context.Context, customerGID string) (int, error)
	// CustomerTotalSpent returns cumulative spend in store currency
	CustomerTotalSpent(ctx context.Context, customerGID string) (decimal.Decimal, error)
	// UpdateCustomerPoints fully replaces the points balance
	UpdateCustomerPoints(ctx context.Context, customerGID string, points decimal.Decimal) error
	// UpdateCustomerClubLevel fully replaces the club level
	UpdateCustomerClubLevel(ctx context.Context, customerGID string, level int) error
	// UpdateOrderNote replaces the order note
	UpdateOrderNote(ctx context.Context, orderGID string, note string) error
}

// WebhookService runs the points pipeline for incoming orders.
type WebhookService struct {
	store  CustomerStore
	calc   *points.Calculator
	logger *zap.Logger
}

// NewWebhookService creates new WebhookService instance
func NewWebhookService(store CustomerStore, calc *points.Calculator, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		store:  store,
		calc:   calc,
		logger: logger,
	}
}

// ProcessOrder applies the loyalty effect of one order: annotates the order,
// debits redeemed points, credits earned points and re-evaluates the club
// level. Only the balance write is mandatory; the note annotation and club
// level maintenance are best-effort and never fail the pipeline.
func (ws *WebhookService) ProcessOrder(ctx context.Context, order *models.Order) (*models.OrderSummary, error) {
	if order.Customer == nil {
		return nil, models.ErrNoCustomer
	}

	orderGID := shopify.OrderGID(order.ID)
	customerGID := shopify.CustomerGID(order.Customer.ID)

	note := orderNoteText
	if existing := strings.TrimSpace(order.Note); existing != "" {
		note = existing + " | " + orderNoteText
	}
	if err := ws.store.UpdateOrderNote(ctx, orderGID, note); err != nil {
		ws.logger.Warn("order note update skipped",
			zap.Int64("order", order.ID),
			zap.Error(err))
	}

	current, err := ws.store.CustomerPoints(ctx, customerGID)
	if err != nil {
		ws.logger.Warn("points fetch failed, assuming zero balance",
			zap.String("customer", customerGID),
			zap.Error(err))
		current = decimal.Zero
	}

	level, err := ws.store.CustomerClubLevel(ctx, customerGID)
	if err != nil {
		ws.logger.Warn("club level fetch failed, assuming level 0",
			zap.String("customer", customerGID),
			zap.Error(err))
		level = 0
	}

	debit := ws.calc.PointsToDebit(order)
	add := ws.calc.PointsToAdd(order.TotalPrice, level)
	applied, final := points.FinalBalance(current, debit, add)

	ws.logger.Debug("points computed",
		zap.String("order", order.Name),
		zap.Int("level", level),
		zap.String("debit", applied.String()),
		zap.String("add", add.String()),
		zap.String("previous", current.String()),
		zap.String("final", final.String()))

	if err := ws.store.UpdateCustomerPoints(ctx, customerGID, final); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPointsUpdateFailed, err)
	}

	ws.maintainClubLevel(ctx, customerGID, level)

	return &models.OrderSummary{
		Order:           order.Name,
		Customer:        order.Customer.ID,
		PointsDebited:   applied,
		PointsAdded:     add,
		PreviousBalance: current,
		NewBalance:      final,
	}, nil
}

// maintainClubLevel re-evaluates the club level from cumulative spend and
// writes it back only when it changed. Failures are logged and swallowed.
func (ws *WebhookService) maintainClubLevel(ctx context.Context, customerGID string, current int) {
	spent, err := ws.store.CustomerTotalSpent(ctx, customerGID)
	if err != nil {
		ws.logger.Warn("club level check skipped",
			zap.String("customer", customerGID),
			zap.Error(err))
		return
	}

	next := ws.calc.ResolveTier(spent, current)
	if next == current {
		return
	}

	if err := ws.store.UpdateCustomerClubLevel(ctx, customerGID, next); err != nil {
		ws.logger.Warn("club level update failed",
			zap.String("customer", customerGID),
			zap.Int("level", next),
			zap.Error(err))
		return
	}

	ws.logger.Info("club level changed",
		zap.String("customer", customerGID),
		zap.Int("from", current),
		zap.Int("to", next),
		zap.String("spent", spent.String()))
}
