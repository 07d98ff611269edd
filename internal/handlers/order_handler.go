package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"grosir/internal/middleware"
	"grosir/internal/models"
	"grosir/internal/repositories"
	"grosir/internal/services"
)

// OrderHandler handles HTTP requests for the order history and
// fulfillment updates.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Get("/", h.HandleListOrders)
	orders.Get("/:id", h.HandleGetOrder)
	orders.Patch("/:id/status", h.HandleUpdateStatus)
	orders.Patch("/:id/tracking", h.HandleSetTracking)
}

// HandleListOrders returns the history, newest first, filtered by the
// optional ?q= search term.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.SearchOrders(c.Query("q"))
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrder returns a single order by ID.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleUpdateStatus moves an order along the fulfillment graph.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	err := h.service.UpdateOrderStatus(c.Params("id"), req.Status)
	middleware.RecordOrderOperation("status_update", err == nil)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		case errors.Is(err, services.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Status transition not allowed",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update order status",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated",
		"status":  req.Status,
	})
}

// HandleSetTracking records carrier tracking metadata on an order.
func (h *OrderHandler) HandleSetTracking(c *fiber.Ctx) error {
	var req struct {
		TrackingNumber    string `json:"tracking_number"`
		EstimatedDelivery string `json:"estimated_delivery"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetTracking(c.Params("id"), req.TrackingNumber, req.EstimatedDelivery); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update tracking",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Tracking updated",
	})
}
