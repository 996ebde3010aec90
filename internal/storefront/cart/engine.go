package cart

import (
	"context"
	"errors"

	"goshop/internal/logger"
	"goshop/internal/product"
	"goshop/internal/storefront/session"

	"go.uber.org/zap"
)

var ErrOutOfStock = errors.New("out of stock")

// Engine holds the active in-memory cart, mirroring the store for the current
// session's key. Every mutation writes through to the store before returning;
// the only operation that replaces the cart wholesale is Initialize, which
// must run on startup and on every identity change.
type Engine struct {
	store *Store
	key   string
	lines []Line
}

func NewEngine(store *Store) *Engine {
	return &Engine{store: store, key: session.Identity{}.CartKey(), lines: []Line{}}
}

// Watch loads the cart for the current identity and subscribes to session
// changes, so every login and logout re-initializes the cart before the
// session call returns. This is the wiring a storefront composition uses;
// after Watch, no caller needs to invoke Initialize on identity changes.
func (e *Engine) Watch(ctx context.Context, sessions *session.Manager) error {
	if err := e.Initialize(ctx, sessions.Current()); err != nil {
		return err
	}
	sessions.OnChange(func(id session.Identity) {
		if err := e.Initialize(ctx, id); err != nil {
			logger.FromCtx(ctx).Error("failed to switch cart on identity change",
				zap.String("key", id.CartKey()),
				zap.Error(err),
			)
		}
	})
	return nil
}

// Initialize resolves the identity's cart key and loads that cart, discarding
// whatever was in memory. Carts are never merged across identities: the old
// in-memory cart was already persisted under its own key by the mutation that
// produced it.
func (e *Engine) Initialize(ctx context.Context, id session.Identity) error {
	key := id.CartKey()
	lines, err := e.store.Load(ctx, key)
	if err != nil {
		return err
	}

	e.key = key
	e.lines = lines

	logger.FromCtx(ctx).Debug("cart initialized",
		zap.String("key", key),
		zap.Int("lines", len(lines)),
	)

	return nil
}

// Key returns the active storage key.
func (e *Engine) Key() string {
	return e.key
}

// Add appends one unit of p, refusing when the cart already holds p's entire
// stock. The stock figure is whatever the caller last fetched; there is no
// re-validation against the catalog here.
func (e *Engine) Add(ctx context.Context, p product.Product) error {
	if e.QuantityOf(p.ID) >= p.Stock {
		return ErrOutOfStock
	}

	next := append(e.copyLines(), Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
	})

	return e.commit(ctx, next)
}

// DecrementOne removes the first line matching productID, a no-op when none
// match.
func (e *Engine) DecrementOne(ctx context.Context, productID uint) error {
	for i, line := range e.lines {
		if line.ProductID == productID {
			next := e.copyLines()
			next = append(next[:i], next[i+1:]...)
			return e.commit(ctx, next)
		}
	}
	return nil
}

// RemoveAt removes the line at position i; out-of-bounds is a no-op.
func (e *Engine) RemoveAt(ctx context.Context, i int) error {
	if i < 0 || i >= len(e.lines) {
		return nil
	}
	next := e.copyLines()
	next = append(next[:i], next[i+1:]...)
	return e.commit(ctx, next)
}

// Clear empties the cart and removes the stored entry for the active key.
func (e *Engine) Clear(ctx context.Context) error {
	if err := e.store.Clear(ctx, e.key); err != nil {
		return err
	}
	e.lines = []Line{}
	return nil
}

// commit persists next under the active key, then makes it the in-memory
// cart. A failed write leaves memory untouched so store and memory never
// diverge.
func (e *Engine) commit(ctx context.Context, next []Line) error {
	if err := e.store.Save(ctx, e.key, next); err != nil {
		return err
	}
	e.lines = next
	return nil
}

func (e *Engine) copyLines() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// Lines returns a copy of the cart contents in insertion order.
func (e *Engine) Lines() []Line {
	return e.copyLines()
}

func (e *Engine) Len() int {
	return len(e.lines)
}

// Total sums the unit prices of every line.
func (e *Engine) Total() float64 {
	var total float64
	for _, line := range e.lines {
		total += line.UnitPrice
	}
	return total
}

// QuantityOf counts the lines held for a product.
func (e *Engine) QuantityOf(productID uint) int {
	n := 0
	for _, line := range e.lines {
		if line.ProductID == productID {
			n++
		}
	}
	return n
}
