package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"grosir/internal/repositories"
	"grosir/internal/services"
)

// AccountHandler handles HTTP requests for customer accounts and
// invoice payments.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/customers")
	customers.Get("/", h.HandleListCustomers)
	customers.Get("/:customerID", h.HandleGetCustomer)
	customers.Post("/:customerID/payments", h.HandlePayInvoice)
}

type paymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// HandleListCustomers returns all customer accounts.
func (h *AccountHandler) HandleListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers()
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customers",
			"error":   err.Error(),
		})
	}
	return c.JSON(customers)
}

// HandleGetCustomer returns one customer account.
func (h *AccountHandler) HandleGetCustomer(c *fiber.Ctx) error {
	customer, err := h.service.GetCustomer(c.Params("customerID"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve customer",
			"error":   err.Error(),
		})
	}
	return c.JSON(customer)
}

// HandlePayInvoice applies a payment to the customer's balance.
func (h *AccountHandler) HandlePayInvoice(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	customer, err := h.service.PayInvoice(c.Params("customerID"), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
			})
		case errors.Is(err, services.ErrInvalidPaymentAmount):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid payment amount",
				"error":   err.Error(),
			})
		default:
			log.Printf("Error paying invoice for %s: %v", c.Params("customerID"), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not process payment",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(customer)
}
