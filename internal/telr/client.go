package telr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrNotConfigured   = errors.New("payment gateway credentials are not configured")
	ErrInvalidResponse = errors.New("invalid response from payment gateway")
)

// GatewayError is an error reported by the gateway itself.
type GatewayError struct {
	Message string
	Note    string
}

func (e *GatewayError) Error() string {
	if e.Note != "" {
		return fmt.Sprintf("gateway error: %s (%s)", e.Message, e.Note)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

// Config holds the gateway credentials. TestMode selects the sandbox flag on
// created orders.
type Config struct {
	Endpoint string
	StoreID  string
	AuthKey  string
	TestMode bool
	Timeout  time.Duration
}

// Client talks to the Telr hosted-payment-page API. Both order creation and
// status checks go through a single order.json endpoint, distinguished by the
// method field.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a gateway client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateOrder registers a payment order and returns the gateway order ref
// plus the hosted checkout URL the customer must be redirected to.
func (c *Client) CreateOrder(ctx context.Context, params *CreateOrderParams) (*Order, error) {
	if c.config.StoreID == "" || c.config.AuthKey == "" {
		return nil, ErrNotConfigured
	}

	testFlag := "0"
	if c.config.TestMode {
		testFlag = "1"
	}

	req := createRequest{
		Method:   "create",
		Store:    c.config.StoreID,
		AuthKey:  c.config.AuthKey,
		Framed:   0,
		Language: "en",
		Order: orderSection{
			CartID:      params.CartID,
			Test:        testFlag,
			Amount:      params.Amount,
			Currency:    params.Currency,
			Description: params.Description,
			TranType:    "sale",
		},
		Customer: params.Customer,
		Return:   params.ReturnURLs,
	}

	resp, err := c.call(ctx, &req)
	if err != nil {
		return nil, err
	}
	if resp.Order == nil || resp.Order.Ref == "" || resp.Order.URL == "" {
		return nil, ErrInvalidResponse
	}
	return resp.Order, nil
}

// CheckOrder fetches the current status of an order by its gateway ref.
func (c *Client) CheckOrder(ctx context.Context, orderRef string) (*Order, error) {
	if c.config.StoreID == "" || c.config.AuthKey == "" {
		return nil, ErrNotConfigured
	}

	req := checkRequest{
		Method:  "check",
		Store:   c.config.StoreID,
		AuthKey: c.config.AuthKey,
	}
	req.Order.Ref = orderRef

	resp, err := c.call(ctx, &req)
	if err != nil {
		return nil, err
	}
	if resp.Order == nil || resp.Order.Status == nil {
		return nil, ErrInvalidResponse
	}
	return resp.Order, nil
}

func (c *Client) call(ctx context.Context, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gateway API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if out.Error != nil {
		return nil, &GatewayError{Message: out.Error.Message, Note: out.Error.Note}
	}
	return &out, nil
}
