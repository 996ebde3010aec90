package product

import (
	"context"
	"strings"
	"time"

	"goshop/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, opts ListOptions) ([]Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "List"),
	)

	start := time.Now()

	opts.Search = strings.TrimSpace(opts.Search)
	opts.Category = strings.TrimSpace(opts.Category)

	products, err := s.repo.List(ctx, opts)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Debug("product list success",
		zap.Int("count", len(products)),
		zap.String("search", opts.Search),
		zap.String("category", opts.Category),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrNameRequired
	}
	if params.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if params.ImageURL == "" {
		return nil, ErrImageRequired
	}
	if params.Stock < 0 {
		params.Stock = 0
	}

	return s.repo.Create(ctx, params)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
