package backendhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"
	"seeder/internal/pkg/stats"
)

const (
	// DefaultTimeout bounds every call. Timed-out units are recorded as
	// failed, never retried.
	DefaultTimeout = 30 * time.Second

	createOrderPath    = "/api/v1/orders"
	payInstallmentPath = "/api/v1/payments"
)

// Client implements the Backend port over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	matcher    StepLimitMatcher
	stats      *stats.CallStats
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithStepLimitMatcher replaces the daily-limit detection rule.
func WithStepLimitMatcher(matcher StepLimitMatcher) Option {
	return func(c *Client) {
		c.matcher = matcher
	}
}

// WithCallStats attaches a latency collector; every call is recorded.
func WithCallStats(callStats *stats.CallStats) Option {
	return func(c *Client) {
		c.stats = callStats
	}
}

// NewClient creates a backend client for the given base URL and bearer token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
		token:      token,
		matcher:    DefaultStepLimitMatcher,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// CreateOrder submits one fixture as a new order. The order identifier is
// generated here, before the request, so the create call is idempotent on
// the backend side.
func (c *Client) CreateOrder(ctx context.Context, f fixture.Fixture) (*order.Order, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	orderID := kernel.NewUUID()
	plan := f.Plan()
	payload := createOrderRequest{
		Identifier:    orderID.String(),
		Quantity:      plan.Quantity(),
		DurationSteps: plan.DurationSteps(),
		RatePerStep:   plan.RatePerStep().Amount(),
		PaymentMethod: plan.PaymentMethod().String(),
		DeliveryAddress: addressDTO{
			Street: f.Address().Street(),
			City:   f.Address().City(),
		},
	}

	body, statusCode, err := c.post(ctx, "create order", createOrderPath, payload)
	if err != nil {
		return nil, err
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, c.rejectionError(orderID.String(), statusCode, body, false)
	}

	var resp createOrderResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, errs.NewUnexpectedResponseError(statusCode, fmt.Sprintf("malformed body: %s", err))
	}
	if !resp.Success {
		return nil, errs.NewUnexpectedResponseError(statusCode, "response did not report success")
	}

	return order.NewOrder(orderID, plan.RatePerStep(), plan.PaymentMethod(), plan.DurationSteps())
}

// PayInstallment pays exactly one installment step of an existing order.
// The backend's one-installment-per-day rejection comes back as
// errs.ErrInstallmentLimitReached; the matcher decides what counts as that
// signal.
func (c *Client) PayInstallment(
	ctx context.Context,
	orderID kernel.UUID,
	method kernel.PaymentMethod,
) (order.PaymentStep, error) {
	if err := orderID.Validate(); err != nil {
		return order.PaymentStep{}, err
	}
	if err := method.Validate(); err != nil {
		return order.PaymentStep{}, err
	}

	payload := payInstallmentRequest{
		OrderID:       orderID.String(),
		PaymentMethod: method.String(),
	}

	body, statusCode, err := c.post(ctx, "pay installment", payInstallmentPath, payload)
	if err != nil {
		return order.PaymentStep{}, err
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return order.PaymentStep{}, c.rejectionError(orderID.String(), statusCode, body, true)
	}

	var resp payInstallmentResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return order.PaymentStep{}, errs.NewUnexpectedResponseError(statusCode, fmt.Sprintf("malformed body: %s", err))
	}
	if !resp.Success {
		return order.PaymentStep{}, errs.NewUnexpectedResponseError(statusCode, "response did not report success")
	}

	remaining, err := kernel.NewMoney(resp.Data.Order.Remaining)
	if err != nil {
		return order.PaymentStep{}, errs.NewUnexpectedResponseError(statusCode, "negative remaining balance")
	}

	return order.PaymentStep{
		StepNumber: resp.Data.Step,
		Remaining:  remaining,
	}, nil
}

// post issues exactly one request and returns the raw body and status code.
// Transport-level failures are mapped to errs.TransportError; nothing is
// retried.
func (c *Client) post(ctx context.Context, op, path string, payload any) ([]byte, int, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(started)

	if err != nil {
		c.record(false, latency)
		return nil, 0, errs.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(false, latency)
		return nil, 0, errs.NewTransportError(op, err)
	}

	success := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	c.record(success, latency)

	return body, resp.StatusCode, nil
}

// rejectionError maps a non-2xx response onto the error taxonomy. The daily
// installment limit is only checked for payment calls.
func (c *Client) rejectionError(orderID string, statusCode int, body []byte, payment bool) error {
	var errResp errorResponse
	_ = json.Unmarshal(body, &errResp)
	message := errResp.Message
	if message == "" {
		message = http.StatusText(statusCode)
	}

	if payment && c.matcher(statusCode, message) {
		return errs.NewInstallmentLimitError(orderID, message)
	}

	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return errs.NewRequestRejectedError(statusCode, message)
	}

	return errs.NewUnexpectedResponseError(statusCode, message)
}

func (c *Client) record(success bool, latency time.Duration) {
	if c.stats != nil {
		c.stats.Record(success, latency)
	}
}
