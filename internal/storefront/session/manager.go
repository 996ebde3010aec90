package session

import (
	"context"

	"goshop/internal/logger"
	"goshop/internal/storefront/cartstore"

	"go.uber.org/zap"
)

// Manager owns the current Identity and its durable copy. Every other
// storefront component reads the identity through it; only Login and Logout
// mutate it. Change listeners run synchronously before either returns, so a
// dependent cart engine is fully re-initialized within the identity-change
// event, never on a delayed timer.
type Manager struct {
	kv        cartstore.KV
	current   Identity
	listeners []func(Identity)
}

// NewManager restores any previously saved session from the store (the
// silent token restore on startup).
func NewManager(ctx context.Context, kv cartstore.KV) (*Manager, error) {
	m := &Manager{kv: kv}

	token, err := m.get(ctx, cartstore.KeyUserToken)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return m, nil
	}

	role, _ := m.get(ctx, cartstore.KeyUserRole)
	userID, _ := m.get(ctx, cartstore.KeyUserID)
	name, _ := m.get(ctx, cartstore.KeyUserName)
	email, _ := m.get(ctx, cartstore.KeyUserEmail)

	m.current = Identity{Token: token, Role: role, UserID: userID, Name: name, Email: email}

	logger.L().Debug("session restored",
		zap.String("user_id", userID),
		zap.String("role", role),
	)

	return m, nil
}

func (m *Manager) get(ctx context.Context, key string) (string, error) {
	data, err := m.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Current returns the active identity.
func (m *Manager) Current() Identity {
	return m.current
}

// Token returns the active bearer token, empty for guests.
func (m *Manager) Token() string {
	return m.current.Token
}

// OnChange registers a listener invoked synchronously on every Login/Logout.
func (m *Manager) OnChange(fn func(Identity)) {
	m.listeners = append(m.listeners, fn)
}

// Login persists the triple and activates it as the current identity. The
// store writes land before listeners run.
func (m *Manager) Login(ctx context.Context, id Identity) error {
	values := map[string]string{
		cartstore.KeyUserToken: id.Token,
		cartstore.KeyUserRole:  id.Role,
		cartstore.KeyUserID:    id.UserID,
		cartstore.KeyUserName:  id.Name,
		cartstore.KeyUserEmail: id.Email,
	}
	for key, value := range values {
		if err := m.kv.Set(ctx, key, []byte(value)); err != nil {
			return err
		}
	}

	m.current = id
	m.notify()

	logger.L().Info("session login",
		zap.String("user_id", id.UserID),
		zap.String("role", id.Role),
	)

	return nil
}

// Logout clears the saved session and falls back to the guest identity. The
// guest cart is left untouched; whatever was stored under cart_guest before
// login becomes visible again through re-initialization.
func (m *Manager) Logout(ctx context.Context) error {
	keys := []string{
		cartstore.KeyUserToken,
		cartstore.KeyUserRole,
		cartstore.KeyUserID,
		cartstore.KeyUserName,
		cartstore.KeyUserEmail,
	}
	for _, key := range keys {
		if err := m.kv.Delete(ctx, key); err != nil {
			return err
		}
	}

	m.current = Identity{}
	m.notify()

	logger.L().Info("session logout")

	return nil
}

func (m *Manager) notify() {
	for _, fn := range m.listeners {
		fn(m.current)
	}
}
