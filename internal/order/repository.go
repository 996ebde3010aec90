package order

import (
	"context"
	"database/sql"
	"time"

	"goshop/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create inserts the order and its items in one transaction.
func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("user_id", o.UserID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
	INSERT INTO orders (user_id, customer, address, payment_method, total, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`,
		o.UserID, o.Customer, o.Address, o.PaymentMethod, o.Total, o.Status, o.CreatedAt,
	)
	if err := row.Scan(&o.ID); err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		row := tx.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, name, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
			item.OrderID, item.ProductID, item.Name, item.Price, item.Quantity,
		)
		if err := row.Scan(&item.ID); err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Int("items", len(o.Items)),
	)

	return o, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `
	SELECT id, user_id, customer, address, payment_method, total, status, created_at
	FROM orders
	ORDER BY created_at DESC`)
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]Order, error) {
	return r.list(ctx, `
	SELECT id, user_id, customer, address, payment_method, total, status, created_at
	FROM orders
	WHERE user_id = $1
	ORDER BY created_at DESC`, userID)
}

func (r *repository) list(ctx context.Context, query string, args ...any) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "list"),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.Customer, &o.Address,
			&o.PaymentMethod, &o.Total, &o.Status, &o.CreatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	log.Debug("orders listed",
		zap.Int("count", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)

	return orders, nil
}

func (r *repository) attachItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	index := make(map[uint]*Order, len(orders))
	for i := range orders {
		ids = append(ids, int64(orders[i].ID))
		index[orders[i].ID] = &orders[i]
	}

	rows, err := r.db.QueryContext(ctx, `
	SELECT id, order_id, product_id, name, price, quantity
	FROM order_items
	WHERE order_id = ANY($1)
	ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.Name, &item.Price, &item.Quantity,
		); err != nil {
			return err
		}
		if o, ok := index[item.OrderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	var o Order
	row := r.db.QueryRowContext(ctx, `
	SELECT id, user_id, customer, address, payment_method, total, status, created_at
	FROM orders
	WHERE id = $1`, id)
	err := row.Scan(
		&o.ID, &o.UserID, &o.Customer, &o.Address,
		&o.PaymentMethod, &o.Total, &o.Status, &o.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Items = []OrderItem{}
	orders := []Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}
