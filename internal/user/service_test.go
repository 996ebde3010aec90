package user

import (
	"context"
	"errors"
	"testing"

	"goshop/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("Success hashes password and assigns customer role", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
			return u.Email == "budi@mail.com" &&
				u.Role == auth.RoleCustomer &&
				u.Password != "rahasia" &&
				auth.CheckPasswordHash("rahasia", u.Password)
		})).Return(&User{ID: 1, Name: "Budi", Email: "budi@mail.com", Role: auth.RoleCustomer}, nil)

		created, err := svc.Register(context.Background(), RegisterParams{
			Name:     " Budi ",
			Email:    " Budi@Mail.com ",
			Password: "rahasia",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Register(context.Background(), RegisterParams{Email: "x@mail.com"})
		assert.ErrorIs(t, err, ErrMissingFields)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate email surfaces ErrEmailExists", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", mock.Anything, mock.Anything).Return(nil, ErrEmailExists)

		_, err := svc.Register(context.Background(), RegisterParams{
			Name: "Budi", Email: "budi@mail.com", Password: "rahasia",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	hashed, err := auth.HashPassword("rahasia")
	require.NoError(t, err)

	stored := &User{ID: 1, Name: "Budi", Email: "budi@mail.com", Password: hashed, Role: auth.RoleCustomer}

	t.Run("Success returns token and profile", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", mock.Anything, "budi@mail.com").Return(stored, nil)

		res, err := svc.Login(context.Background(), "Budi@Mail.com", "rahasia")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, uint(1), res.UserID)
		assert.Equal(t, auth.RoleCustomer, res.Role)
		assert.Equal(t, "Budi", res.Name)

		claims, err := auth.ParseJWT(res.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
	})

	t.Run("Unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", mock.Anything, "ghost@mail.com").Return(nil, nil)

		_, err := svc.Login(context.Background(), "ghost@mail.com", "rahasia")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", mock.Anything, "budi@mail.com").Return(stored, nil)

		_, err := svc.Login(context.Background(), "budi@mail.com", "salah")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Repository error passes through", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("GetByEmail", mock.Anything, "budi@mail.com").Return(nil, errors.New("db down"))

		_, err := svc.Login(context.Background(), "budi@mail.com", "rahasia")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_GetByID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, uint(9)).Return(nil, nil)

	_, err := svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
