package session

import "goshop/internal/storefront/cartstore"

// Identity is the visitor's (token, userId) pair, plus the profile fields the
// storefront keeps next to them. A zero Identity is the guest.
type Identity struct {
	Token  string
	Role   string
	UserID string
	Name   string
	Email  string
}

// Authenticated reports whether a member session is active. Both the token
// and the user id must be present; a half-restored session counts as guest.
func (id Identity) Authenticated() bool {
	return id.Token != "" && id.UserID != ""
}

// CartKey derives the storage partition for this identity. It is a pure
// function of the identity: guests share cart_guest, each member gets
// cart_user_<id>.
func (id Identity) CartKey() string {
	if id.Authenticated() {
		return cartstore.UserCartKey(id.UserID)
	}
	return cartstore.KeyGuestCart
}
