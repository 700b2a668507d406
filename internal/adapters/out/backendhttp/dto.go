// Package backendhttp implements the Backend port against the remote
// installment-commerce HTTP API. Every call issues exactly one request,
// carries a bearer token, and maps failures onto the remote error taxonomy
// in internal/pkg/errs.
package backendhttp

// createOrderRequest is the order-creation payload. The identifier is
// generated client-side, which makes retried submissions of the same fixture
// idempotent on the backend.
type createOrderRequest struct {
	Identifier      string     `json:"identifier"`
	Quantity        int        `json:"quantity"`
	DurationSteps   int        `json:"durationSteps"`
	RatePerStep     int64      `json:"ratePerStep"`
	PaymentMethod   string     `json:"paymentMethod"`
	DeliveryAddress addressDTO `json:"deliveryAddress"`
}

type addressDTO struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type createOrderResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Order orderDTO `json:"order"`
	} `json:"data"`
}

type orderDTO struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	PaidSteps  int    `json:"paidSteps"`
	TotalSteps int    `json:"totalSteps"`
	Remaining  int64  `json:"remaining"`
}

// payInstallmentRequest is the dependent-step payload: pay exactly one
// installment of an existing order.
type payInstallmentRequest struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
}

type payInstallmentResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Step  int      `json:"step"`
		Order orderDTO `json:"order"`
	} `json:"data"`
}

// errorResponse is the shape of every non-2xx body: a bare message.
type errorResponse struct {
	Message string `json:"message"`
}
