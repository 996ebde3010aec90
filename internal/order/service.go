package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"goshop/internal/logger"
	"goshop/internal/payment"
	"goshop/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, userID uint, draft Draft) (*CheckoutResult, error)
	ListAll(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID uint, to Status) (*Order, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
	gateway  payment.Gateway
}

func NewService(repo Repository, userRepo user.Repository, gateway payment.Gateway) Service {
	return &service{repo: repo, userRepo: userRepo, gateway: gateway}
}

// Checkout creates a Pending order from the draft and opens a hosted invoice
// for it. The invoice URL travels back to the storefront, which navigates the
// buyer away; nothing here waits for payment to settle.
func (s *service) Checkout(ctx context.Context, userID uint, draft Draft) (*CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
	)

	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(draft.Address) == "" {
		return nil, ErrEmptyAddress
	}
	if len(draft.Items) == 0 {
		return nil, ErrEmptyItems
	}

	customer := draft.Customer
	payerEmail := ""
	if u, err := s.userRepo.GetByID(ctx, userID); err == nil && u != nil {
		customer = u.Name
		payerEmail = u.Email
	}

	o := &Order{
		UserID:        userID,
		Customer:      customer,
		Address:       draft.Address,
		PaymentMethod: draft.PaymentMethod,
		Total:         draft.Total,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}
	for _, item := range draft.Items {
		o.Items = append(o.Items, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	referenceID := fmt.Sprintf("ORDER-%d-%s", created.ID, uuid.New().String())
	inv, err := s.gateway.CreateInvoice(ctx, payment.InvoiceRequest{
		ReferenceID: referenceID,
		Amount:      created.Total,
		Description: fmt.Sprintf("Pembayaran GoShop #%s", referenceID),
		PayerEmail:  payerEmail,
		PayerName:   customer,
	})
	if err != nil {
		log.Error("failed to create invoice",
			zap.Uint("order_id", created.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	log.Info("checkout complete",
		zap.Uint("order_id", created.ID),
		zap.Float64("total", created.Total),
	)

	return &CheckoutResult{
		OrderID:    created.ID,
		PaymentURL: inv.InvoiceURL,
	}, nil
}

func (s *service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus applies an admin transition after validating it against the
// workflow. Terminal orders refuse every transition, so a stale dashboard
// cannot resurrect a cancelled or completed order.
func (s *service) UpdateStatus(ctx context.Context, orderID uint, to Status) (*Order, error) {
	if !to.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	if o.Status.Terminal() {
		return nil, ErrOrderFinal
	}
	if !CanTransition(o.Status, to) {
		return nil, ErrTransitionRefused
	}

	if err := s.repo.UpdateStatus(ctx, orderID, to); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Uint("order_id", orderID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(to)),
	)

	o.Status = to
	return o, nil
}
