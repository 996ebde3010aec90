package checkout

import (
	"context"
	"strings"
	"sync"

	"goshop/internal/logger"
	"goshop/internal/order"
	"goshop/internal/storefront/cart"
	"goshop/internal/storefront/session"

	"go.uber.org/zap"
)

// Backend is the slice of the API client the coordinator needs.
type Backend interface {
	Checkout(ctx context.Context, draft order.Draft) (*order.CheckoutResult, error)
}

// Coordinator drives a checkout submission end to end: it validates the
// session and cart, builds the order draft, calls the backend, and clears
// the cart only after the backend has confirmed the order. A failed
// submission leaves the cart exactly as it was.
type Coordinator struct {
	engine   *cart.Engine
	backend  Backend
	sessions *session.Manager

	mu       sync.Mutex
	inFlight bool
}

func NewCoordinator(engine *cart.Engine, backend Backend, sessions *session.Manager) *Coordinator {
	return &Coordinator{engine: engine, backend: backend, sessions: sessions}
}

// Submit places the order for the current cart and returns the hosted
// payment URL. Validation runs before any network call; only one
// submission may be in flight at a time.
func (c *Coordinator) Submit(ctx context.Context, address, paymentMethod string) (string, error) {
	id := c.sessions.Current()
	if !id.Authenticated() {
		return "", ErrNotAuthenticated
	}
	if strings.TrimSpace(address) == "" {
		return "", ErrEmptyAddress
	}
	if c.engine.Len() == 0 {
		return "", ErrEmptyCart
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return "", ErrCheckoutInFlight
	}
	c.inFlight = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	draft := c.buildDraft(id, address, paymentMethod)

	result, err := c.backend.Checkout(ctx, draft)
	if err != nil {
		logger.FromCtx(ctx).Warn("checkout rejected by backend", zap.Error(err))
		return "", err
	}

	if err := c.engine.Clear(ctx); err != nil {
		logger.FromCtx(ctx).Error("failed to clear cart after checkout",
			zap.Uint("order_id", result.OrderID), zap.Error(err))
	}
	return result.PaymentURL, nil
}

// buildDraft collapses the per-unit cart lines into quantity rows,
// keeping products in the order they first appeared in the cart.
func (c *Coordinator) buildDraft(id session.Identity, address, paymentMethod string) order.Draft {
	var items []order.DraftItem
	index := make(map[uint]int)
	for _, line := range c.engine.Lines() {
		if i, ok := index[line.ProductID]; ok {
			items[i].Quantity++
			continue
		}
		index[line.ProductID] = len(items)
		items = append(items, order.DraftItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.UnitPrice,
			Quantity:  1,
		})
	}

	customer := id.Name
	if customer == "" {
		customer = "Member"
	}
	return order.Draft{
		Customer:      customer,
		Address:       address,
		PaymentMethod: paymentMethod,
		Total:         c.engine.Total(),
		Items:         items,
	}
}
