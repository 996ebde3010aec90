package order

import "time"

type Order struct {
	ID            uint        `json:"id"`
	UserID        uint        `json:"user_id"`
	Customer      string      `json:"customer"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"payment_method"`
	Total         float64     `json:"total"`
	Status        Status      `json:"status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Draft is the client-assembled checkout payload. Unlike the storefront cart,
// which keeps one line per unit, a draft carries one row per product with a
// quantity; the collapse happens when the draft is built, never inside the cart.
type Draft struct {
	Customer      string      `json:"customer"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"payment_method"`
	Total         float64     `json:"total"`
	Items         []DraftItem `json:"items"`
}

type DraftItem struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CheckoutResult carries what the storefront needs after a backend-confirmed
// order: the order id and the hosted payment page to navigate to.
type CheckoutResult struct {
	OrderID    uint   `json:"order_id"`
	PaymentURL string `json:"payment_url"`
}
