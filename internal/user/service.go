package user

import (
	"context"
	"strings"

	"goshop/internal/auth"
	"goshop/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Email = strings.TrimSpace(strings.ToLower(params.Email))

	if params.Name == "" || params.Email == "" || params.Password == "" {
		return nil, ErrMissingFields
	}

	hashed, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:     params.Name,
		Email:    params.Email,
		Password: hashed,
		Role:     auth.RoleCustomer,
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("user registered",
		zap.Uint("user_id", created.ID),
		zap.String("email", created.Email),
	)

	return created, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !auth.CheckPasswordHash(password, u.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, u.Role, u.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:  token,
		Role:   u.Role,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
