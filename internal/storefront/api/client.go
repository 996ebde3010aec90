// Package api is the storefront's client for the shop's REST surface. It
// speaks the same JSON shapes the server publishes and surfaces the backend's
// {error} body on any non-2xx response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"goshop/internal/logger"
	"goshop/internal/order"
	"goshop/internal/product"
	"goshop/internal/user"

	"go.uber.org/zap"
)

// Client talks to one shop API. TokenFunc supplies the current bearer token
// per request, so authentication transitions take effect immediately without
// rebuilding the client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokenFunc  func() string
}

func NewClient(baseURL string, tokenFunc func() string) *Client {
	if tokenFunc == nil {
		tokenFunc = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokenFunc: tokenFunc,
	}
}

// Error is a backend-reported failure, carrying the {error} message verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokenFunc(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// Products fetches the catalog, optionally filtered by search term and
// category.
func (c *Client) Products(ctx context.Context, search, category string) ([]product.Product, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if category != "" {
		q.Set("category", category)
	}
	path := "/api/products"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp struct {
		Data []product.Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*user.AuthResult, error) {
	var result user.AuthResult
	err := c.doJSON(ctx, http.MethodPost, "/api/login",
		map[string]string{"email": email, "password": password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/register",
		map[string]string{"name": name, "email": email, "password": password}, nil)
}

func (c *Client) Checkout(ctx context.Context, draft order.Draft) (*order.CheckoutResult, error) {
	var result order.CheckoutResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/checkout", draft, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]order.Order, error) {
	var resp struct {
		Data []order.Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/my/orders", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) AdminOrders(ctx context.Context) ([]order.Order, error) {
	var resp struct {
		Data []order.Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/orders", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uint, status order.Status) (*order.Order, error) {
	var resp struct {
		Data order.Order `json:"data"`
	}
	path := fmt.Sprintf("/api/admin/orders/%d", orderID)
	if err := c.doJSON(ctx, http.MethodPut, path, map[string]order.Status{"status": status}, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateProduct uploads a product with its image as multipart form data.
func (c *Client) CreateProduct(ctx context.Context, params product.CreateProductParams, filename string, image io.Reader) (*product.Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	_ = w.WriteField("name", params.Name)
	_ = w.WriteField("price", strconv.FormatFloat(params.Price, 'f', -1, 64))
	_ = w.WriteField("category", params.Category)
	_ = w.WriteField("stock", strconv.Itoa(params.Stock))

	part, err := w.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var resp struct {
		Data product.Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/products", &buf, w.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID uint) error {
	path := fmt.Sprintf("/api/admin/products/%d", productID)
	return c.do(ctx, http.MethodDelete, path, nil, "", nil)
}
