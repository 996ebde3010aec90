// Package cartstore is the durable key-value layer behind the storefront:
// carts and the saved login live here, partitioned by storage key the same way
// a browser profile partitions localStorage.
package cartstore

import "context"

// KV is a flat byte store. Get returns (nil, nil) for a missing key; callers
// treat absence and emptiness alike.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Well-known storage keys, mirroring the public client-state contract.
const (
	KeyGuestCart = "cart_guest"
	KeyUserToken = "user_token"
	KeyUserRole  = "user_role"
	KeyUserID    = "user_id"
	KeyUserName  = "user_name"
	KeyUserEmail = "user_email"
	UserCartPfx  = "cart_user_"
)

// UserCartKey returns the member cart key for a user id.
func UserCartKey(userID string) string {
	return UserCartPfx + userID
}
