package orders

import (
	"context"
	"errors"
	"sort"
	"sync"

	"goshop/internal/auth"
	"goshop/internal/order"
	"goshop/internal/storefront/session"
)

var (
	ErrNotAdmin     = errors.New("only admins may change order status")
	ErrUnknownOrder = errors.New("order is not in the current listing")
)

// Backend is the slice of the API client the view needs.
type Backend interface {
	MyOrders(ctx context.Context) ([]order.Order, error)
	AdminOrders(ctx context.Context) ([]order.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status order.Status) (*order.Order, error)
}

// Row is one order as the listing shows it, annotated with what the
// current viewer may do with it.
type Row struct {
	order.Order

	// Actions holds the statuses an admin may move this order to.
	// Nil for customers and for terminal orders.
	Actions []order.Status

	// CanTrack is set for a customer's own order once it has shipped.
	CanTrack bool
}

// View is the order listing for the current session: the admin dashboard
// when an admin is signed in, the customer's own history otherwise.
// Every mutation re-fetches from the backend rather than patching the
// cached rows.
type View struct {
	backend  Backend
	sessions *session.Manager

	mu   sync.RWMutex
	rows []Row
}

func NewView(backend Backend, sessions *session.Manager) *View {
	return &View{backend: backend, sessions: sessions}
}

func (v *View) isAdmin() bool {
	return v.sessions.Current().Role == auth.RoleAdmin
}

// Refresh re-fetches the listing for the current session.
func (v *View) Refresh(ctx context.Context) error {
	var (
		list []order.Order
		err  error
	)
	if v.isAdmin() {
		list, err = v.backend.AdminOrders(ctx)
	} else {
		list, err = v.backend.MyOrders(ctx)
	}
	if err != nil {
		return err
	}

	admin := v.isAdmin()
	rows := make([]Row, 0, len(list))
	for _, o := range list {
		row := Row{Order: o}
		if admin {
			row.Actions = order.AdminActions(o.Status)
		} else {
			row.CanTrack = o.Status == order.StatusDikirim
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt.After(rows[j].CreatedAt) })

	v.mu.Lock()
	v.rows = rows
	v.mu.Unlock()
	return nil
}

// Rows returns the listing from the last Refresh.
func (v *View) Rows() []Row {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Row, len(v.rows))
	copy(out, v.rows)
	return out
}

func (v *View) find(orderID uint) (Row, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, r := range v.rows {
		if r.ID == orderID {
			return r, true
		}
	}
	return Row{}, false
}

// Transition moves an order to a new status and re-fetches the listing.
// The cached row is checked first so an obviously refused transition
// never reaches the backend.
func (v *View) Transition(ctx context.Context, orderID uint, to order.Status) error {
	if !v.isAdmin() {
		return ErrNotAdmin
	}
	row, ok := v.find(orderID)
	if !ok {
		return ErrUnknownOrder
	}
	if row.Status.Terminal() {
		return order.ErrOrderFinal
	}
	if !order.CanTransition(row.Status, to) {
		return order.ErrTransitionRefused
	}

	if _, err := v.backend.UpdateOrderStatus(ctx, orderID, to); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
