package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"goshop/internal/logger"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.xendit.co"

// invoiceGateway talks to the hosted-invoice API over plain HTTP. One call,
// one invoice, one redirect URL back.
type invoiceGateway struct {
	apiKey     string
	baseURL    string
	returnURL  string
	httpClient *http.Client
}

type GatewayOptions struct {
	APIKey    string
	BaseURL   string
	ReturnURL string
}

func NewInvoiceGateway(opts GatewayOptions) Gateway {
	if opts.APIKey == "" {
		logger.L().Warn("payment api key is empty")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	return &invoiceGateway{
		apiKey:    opts.APIKey,
		baseURL:   opts.BaseURL,
		returnURL: opts.ReturnURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *invoiceGateway) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if req.ReferenceID == "" {
		return nil, ErrEmptyReference
	}

	log := logger.FromCtx(ctx).With(
		zap.String("reference_id", req.ReferenceID),
		zap.Float64("amount", req.Amount),
	)

	body := map[string]interface{}{
		"external_id":      req.ReferenceID,
		"amount":           req.Amount,
		"description":      req.Description,
		"payer_email":      req.PayerEmail,
		"invoice_duration": "86400",
	}
	if g.returnURL != "" {
		body["success_redirect_url"] = g.returnURL
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v2/invoices", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}

	httpReq.SetBasicAuth(g.apiKey, "")
	httpReq.Header.Add("Content-Type", "application/json")

	log.Info("sending invoice request to payment provider")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Error("payment request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("payment provider returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("%w: %s", ErrInvoiceFailed, string(bodyBytes))
	}

	var inv Invoice
	if err := json.Unmarshal(bodyBytes, &inv); err != nil {
		log.Error("failed decoding payment response", zap.Error(err))
		return nil, err
	}

	log.Info("invoice created",
		zap.String("invoice_id", inv.ID),
		zap.String("status", inv.Status),
	)

	return &inv, nil
}
