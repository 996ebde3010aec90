package cart

import (
	"context"
	"encoding/json"

	"goshop/internal/logger"
	"goshop/internal/storefront/cartstore"

	"go.uber.org/zap"
)

// Line is one unit of a product held in a cart. Quantity is represented by
// repetition: adding the same product twice stores two lines.
type Line struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image"`
}

// Store persists one cart per storage key as a JSON array of lines.
type Store struct {
	kv cartstore.KV
}

func NewStore(kv cartstore.KV) *Store {
	return &Store{kv: kv}
}

// Load returns the cart stored under key. A missing entry and an unparseable
// one both come back as an empty cart; corrupt data fails soft, not hard.
func (s *Store) Load(ctx context.Context, key string) ([]Line, error) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []Line{}, nil
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.FromCtx(ctx).Warn("discarding unparseable cart",
			zap.String("key", key),
			zap.Error(err),
		)
		return []Line{}, nil
	}
	if lines == nil {
		lines = []Line{}
	}

	return lines, nil
}

// Save overwrites the stored cart for key.
func (s *Store) Save(ctx context.Context, key string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, data)
}

// Clear removes the stored entry for key.
func (s *Store) Clear(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, key)
}
