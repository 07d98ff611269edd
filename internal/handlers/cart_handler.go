package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"grosir/internal/middleware"
	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/internal/services"
)

// CartHandler handles HTTP requests for the per-customer cart and
// checkout.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/customers/:customerID/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Delete("/items/:index", h.HandleRemoveItem)
	cart.Post("/checkout", h.HandleCheckout)
}

// addItemRequest is the payload for adding a line item. TierMinQuantity
// overrides the tier resolved from the quantity when set.
type addItemRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	Quantity        int    `json:"quantity" validate:"gte=0"`
	TierMinQuantity int    `json:"tier_min_quantity" validate:"gte=0"`
}

// HandleGetCart returns the cart with its running totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart := h.service.Get(c.Params("customerID"))
	subtotal := h.service.Subtotal(cart)
	return c.JSON(fiber.Map{
		"cart":     cart,
		"subtotal": subtotal,
		"tax":      h.service.Tax(subtotal),
		"total":    h.service.Total(cart),
	})
}

// HandleAddItem appends a line item to the cart. Quantity defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req addItemRequest
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
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	customerID := c.Params("customerID")
	var cart models.Cart
	var err error
	if req.TierMinQuantity > 0 {
		cart, err = h.service.AddItemWithTier(customerID, req.ProductID, req.TierMinQuantity, req.Quantity)
	} else {
		cart, err = h.service.AddItem(customerID, req.ProductID, req.Quantity)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid quantity or tier",
				"error":   err.Error(),
			})
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		default:
			log.Printf("Error adding item to cart: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not add item to cart",
				"error":   err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleRemoveItem deletes the line item at the given position.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Item index must be an integer",
		})
	}
	cart, err := h.service.RemoveItem(c.Params("customerID"), index)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cart item not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(cart)
}

// HandleCheckout turns the cart into a new order.
func (h *CartHandler) HandleCheckout(c *fiber.Ctx) error {
	order, err := h.service.Checkout(c.Params("customerID"))
	middleware.RecordOrderOperation("checkout", err == nil)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot check out an empty cart",
			})
		}
		log.Printf("Error during checkout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
