package internal

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

const operatorKey = "operator"

type Handlers struct {
	svc      Services
	sessions *Sessions
	clock    *Clock
	logger   *zap.SugaredLogger
}

// Services is everything the HTTP API calls into.
type Services struct {
	Customers ICustomerService
	Balance   IBalanceService
	Orders    IOrderEngine
	Pickup    IPickupGate
	Closing   IClosingAggregator
}

func NewHandlers(services Services, sessions *Sessions, clock *Clock, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{svc: services, sessions: sessions, clock: clock, logger: logger}
}

func (h *Handlers) Mount(r fiber.Router) {
	api := r.Group("/api", h.Authenticate)

	api.Post("/customers", h.CreateCustomer)
	api.Get("/customers", h.SearchCustomers)
	api.Get("/customers/:id", h.GetCustomer)
	api.Get("/customers/:id/history", h.BalanceHistory)
	api.Post("/customers/:id/topup", h.TopUp)

	api.Post("/orders", h.Checkout)
	api.Get("/orders/:id", h.GetOrder)
	api.Post("/orders/:id/settle", h.Settle)
	api.Post("/orders/:id/void", h.Void)

	api.Get("/items", h.InProcessItems)
	api.Post("/items/ready", h.MarkReady)
	api.Post("/pickup", h.Pickup)

	api.Get("/closing", h.Closing)
}

// Authenticate resolves the operator from the "token" cookie or a bearer header.
func (h *Handlers) Authenticate(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if token == "" {
		token = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	}
	op, err := h.sessions.Parse(token)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	c.Locals(operatorKey, op)
	return c.Next()
}

func (h *Handlers) CreateCustomer(c *fiber.Ctx) error {
	var i model.CustomerInput
	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "Error on create customer request", err)
	}

	cust, err := h.svc.Customers.Create(c.Context(), i)
	if err != nil {
		return h.fail(c, "create customer", err)
	}
	return c.Status(fiber.StatusCreated).JSON(cust)
}

func (h *Handlers) SearchCustomers(c *fiber.Ctx) error {
	customers, err := h.svc.Customers.Search(c.Context(), c.Query("q"))
	if err != nil {
		return h.fail(c, "search customers", err)
	}
	if len(customers) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(customers)
}

func (h *Handlers) GetCustomer(c *fiber.Ctx) error {
	cust, err := h.svc.Customers.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "get customer", err)
	}
	return c.Status(fiber.StatusOK).JSON(cust)
}

func (h *Handlers) BalanceHistory(c *fiber.Ctx) error {
	history, err := h.svc.Balance.GetBalanceHistory(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "balance history", err)
	}
	if len(history) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *Handlers) TopUp(c *fiber.Ctx) error {
	var i model.TopUpInput
	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "Error on top-up request", err)
	}

	res, err := h.svc.Balance.TopUp(c.Context(), c.Params("id"), i.Amount, operator(c))
	if err != nil {
		return h.fail(c, "top-up", err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) Checkout(c *fiber.Ctx) error {
	var i model.CheckoutInput
	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "Error on checkout request", err)
	}

	res, err := h.svc.Orders.Checkout(c.Context(), i, operator(c))
	if err != nil {
		return h.fail(c, "checkout", err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	o, items, err := h.svc.Orders.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "get order", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"order": o, "items": items})
}

func (h *Handlers) Settle(c *fiber.Ctx) error {
	o, err := h.svc.Orders.Settle(c.Context(), c.Params("id"), operator(c))
	if err != nil {
		return h.fail(c, "settle", err)
	}
	return c.Status(fiber.StatusOK).JSON(o)
}

func (h *Handlers) Void(c *fiber.Ctx) error {
	o, err := h.svc.Orders.Void(c.Context(), c.Params("id"), operator(c))
	if err != nil {
		return h.fail(c, "void", err)
	}
	return c.Status(fiber.StatusOK).JSON(o)
}

func (h *Handlers) InProcessItems(c *fiber.Ctx) error {
	items, err := h.svc.Orders.InProcessItems(c.Context())
	if err != nil {
		return h.fail(c, "in-process items", err)
	}
	if len(items) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

type tagsInput struct {
	TagIDs []string `json:"tagIDs"`
}

func (h *Handlers) MarkReady(c *fiber.Ctx) error {
	var i tagsInput
	if err := c.BodyParser(&i); err != nil || len(i.TagIDs) == 0 {
		return badRequest(c, "Error on mark ready request", err)
	}

	res, err := h.svc.Orders.MarkReady(c.Context(), i.TagIDs, operator(c))
	if err != nil {
		return h.fail(c, "mark ready", err)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) Pickup(c *fiber.Ctx) error {
	var i model.PickupRequest
	if err := c.BodyParser(&i); err != nil {
		return badRequest(c, "Error on pickup request", err)
	}

	res, err := h.svc.Pickup.ConfirmPickup(c.Context(), i, operator(c))
	if err != nil {
		h.logger.Errorf("Error on pickup request: %s", err.Error())
		if len(res.Items) == 0 {
			return h.fail(c, "pickup", err)
		}
		return c.Status(statusFor(err)).JSON(fiber.Map{"status": "error", "message": err.Error(), "data": res})
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) Closing(c *fiber.Ctx) error {
	date := h.clock.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, h.clock.Location)
		if err != nil {
			return badRequest(c, "Error on closing request", err)
		}
		date = parsed
	}

	report, err := h.svc.Closing.ClosingReport(c.Context(), date)
	if err != nil {
		return h.fail(c, "closing", err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *Handlers) fail(c *fiber.Ctx, op string, err error) error {
	h.logger.Errorf("Error on %s request: %s", op, err.Error())
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return c.SendStatus(status)
	}
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": err.Error()})
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	data := "incorrect request format"
	if err != nil {
		data = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": message, "data": data})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrInsufficientBalance), errors.Is(err, ErrPaymentRequired):
		return fiber.StatusPaymentRequired
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidCartLine),
		errors.Is(err, ErrUnknownPaymentMethod), errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrOrderVoided), errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrNothingToSettle), errors.Is(err, ErrItemNotReady):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func operator(c *fiber.Ctx) model.Operator {
	op, _ := c.Locals(operatorKey).(model.Operator)
	return op
}
