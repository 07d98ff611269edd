package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"grosir/internal/repositories"
	"grosir/internal/services"
)

// DashboardHandler serves the portal landing-page aggregates.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterRoutes registers the dashboard route with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/customers/:customerID/dashboard", h.HandleSummary)
}

// HandleSummary returns the dashboard aggregates for one customer.
func (h *DashboardHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Params("customerID"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build dashboard summary",
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}
