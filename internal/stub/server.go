// Package stub provides a local fake of the remote installment-commerce
// backend: the order-creation and installment-payment endpoints with the
// same wire shapes and error messages the real system uses. It backs smoke
// runs and the end-to-end test, so a full seeding pipeline can execute
// without touching the real API or its daily rate limits.
package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// stepLimitMessage mirrors the real backend's free-text daily-limit signal.
const stepLimitMessage = "You have already made a payment for this order today"

type orderState struct {
	id          string
	totalSteps  int
	paidSteps   int
	ratePerStep int64
	lastPayment time.Time
}

func (s *orderState) status() string {
	if s.paidSteps >= s.totalSteps {
		return "settled"
	}
	return "active"
}

func (s *orderState) remaining() int64 {
	return s.ratePerStep * int64(s.totalSteps-s.paidSteps)
}

// Server is an in-memory backend double. State lives for the lifetime of
// the process; the seeder's purge flow never touches it.
type Server struct {
	mu     sync.Mutex
	orders map[string]*orderState

	enforceDailyLimit bool
	now               func() time.Time
}

// Option customizes a stub Server.
type Option func(*Server)

// WithDailyLimit enables the one-installment-per-day business rule.
// Disabled by default so tests can walk orders to settlement in one run.
func WithDailyLimit() Option {
	return func(s *Server) {
		s.enforceDailyLimit = true
	}
}

// WithClock replaces the time source, letting tests move between days.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer creates an empty stub backend.
func NewServer(opts ...Option) *Server {
	server := &Server{
		orders: make(map[string]*orderState),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(server)
	}

	return server
}

// RegisterRoutes mounts the backend endpoints on an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.createOrder)
	e.POST("/api/v1/payments", s.payInstallment)
}

// OrderCount reports how many orders the stub holds, for test assertions.
func (s *Server) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

type createOrderRequest struct {
	Identifier      string `json:"identifier"`
	Quantity        int    `json:"quantity"`
	DurationSteps   int    `json:"durationSteps"`
	RatePerStep     int64  `json:"ratePerStep"`
	PaymentMethod   string `json:"paymentMethod"`
	DeliveryAddress struct {
		Street string `json:"street"`
		City   string `json:"city"`
	} `json:"deliveryAddress"`
}

type payInstallmentRequest struct {
	OrderID       string `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) createOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	switch {
	case req.Identifier == "":
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "identifier is required"})
	case req.DeliveryAddress.Street == "":
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "street is required"})
	case req.Quantity <= 0:
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "quantity must be positive"})
	case req.DurationSteps < 1:
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "durationSteps must be positive"})
	case req.RatePerStep <= 0:
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "ratePerStep must be positive"})
	case req.PaymentMethod == "":
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "paymentMethod is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// client-supplied identifiers make creation idempotent
	state, exists := s.orders[req.Identifier]
	if !exists {
		state = &orderState{
			id:          req.Identifier,
			totalSteps:  req.DurationSteps,
			paidSteps:   1, // creation charges the first installment
			ratePerStep: req.RatePerStep,
			lastPayment: s.now(),
		}
		s.orders[req.Identifier] = state
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"data": map[string]any{
			"order": map[string]any{
				"id":         state.id,
				"status":     state.status(),
				"paidSteps":  state.paidSteps,
				"totalSteps": state.totalSteps,
				"remaining":  state.remaining(),
			},
		},
	})
}

func (s *Server) payInstallment(ctx echo.Context) error {
	var req payInstallmentRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Message: "invalid request body"})
	}

	if req.OrderID == "" {
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "orderId is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, exists := s.orders[req.OrderID]
	if !exists {
		return ctx.JSON(http.StatusNotFound, errorResponse{Message: "order not found"})
	}

	if state.paidSteps >= state.totalSteps {
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: "order is fully paid"})
	}

	if s.enforceDailyLimit && sameDay(state.lastPayment, s.now()) {
		return ctx.JSON(http.StatusUnprocessableEntity, errorResponse{Message: stepLimitMessage})
	}

	state.paidSteps++
	state.lastPayment = s.now()

	return ctx.JSON(http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"step": state.paidSteps,
			"order": map[string]any{
				"id":         state.id,
				"status":     state.status(),
				"paidSteps":  state.paidSteps,
				"totalSteps": state.totalSteps,
				"remaining":  state.remaining(),
			},
		},
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
