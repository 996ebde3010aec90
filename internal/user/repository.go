package user

import (
	"context"
	"database/sql"

	"goshop/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("email", u.Email),
	)

	query := `
	INSERT INTO users (name, email, password, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, role`

	created := &User{}
	row := r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Password, u.Role)
	err := row.Scan(&created.ID, &created.Name, &created.Email, &created.Role)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	log.Info("user created", zap.Uint("user_id", created.ID))
	return created, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
	SELECT id, name, email, password, role
	FROM users
	WHERE email = $1`

	u := &User{}
	row := r.db.QueryRowContext(ctx, query, email)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	query := `
	SELECT id, name, email, password, role
	FROM users
	WHERE id = $1`

	u := &User{}
	row := r.db.QueryRowContext(ctx, query, id)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return u, nil
}
