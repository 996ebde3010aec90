package payment

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey  = errors.New("payment api key is not configured")
	ErrInvoiceFailed  = errors.New("payment provider rejected the invoice")
	ErrEmptyReference = errors.New("invoice reference id is required")
)

// InvoiceRequest describes the hosted invoice to create for an order.
type InvoiceRequest struct {
	ReferenceID string
	Amount      float64
	Description string
	PayerEmail  string
	PayerName   string
}

// Invoice is the provider's answer: a hosted payment page the buyer is
// redirected to. Settlement callbacks are out of scope; the storefront only
// ever needs the URL.
type Invoice struct {
	ID          string `json:"id"`
	ReferenceID string `json:"external_id"`
	InvoiceURL  string `json:"invoice_url"`
	Status      string `json:"status"`
}

type Gateway interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)
}
