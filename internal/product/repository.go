package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"goshop/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

	where := []string{"1=1"}
	args := []any{}

	if opts.Search != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)+1))
		args = append(args, "%"+opts.Search+"%")
	}
	if opts.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, opts.Category)
	}

	query := `
	SELECT id, name, price, image, stock, category
	FROM products
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	result := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Stock, &p.Category); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	query := `
	SELECT id, name, price, image, stock, category
	FROM products
	WHERE id = $1`

	var p Product
	row := r.db.QueryRowContext(ctx, query, id)
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Stock, &p.Category)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("name", params.Name),
	)

	query := `
	INSERT INTO products (name, price, image, stock, category)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, name, price, image, stock, category`

	var p Product
	row := r.db.QueryRowContext(ctx, query,
		params.Name, params.Price, params.ImageURL, params.Stock, params.Category,
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Stock, &p.Category); err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
