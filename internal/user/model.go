package user

type User struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is what a successful login hands back to the client: the bearer
// token plus the profile fields the storefront persists alongside it.
type AuthResult struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
