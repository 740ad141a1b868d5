package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TanmayElinje/inventory-pro/internal/application/analytics"
	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/application/ledger"
)

// AnalyticsHandler handles the dashboard and replenishment reports.
type AnalyticsHandler struct {
	dashboardUC     *analytics.DashboardUseCase
	replenishmentUC *ledger.ReplenishmentUseCase
}

// NewAnalyticsHandler builds the handler.
func NewAnalyticsHandler(dashboardUC *analytics.DashboardUseCase, replenishmentUC *ledger.ReplenishmentUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{dashboardUC: dashboardUC, replenishmentUC: replenishmentUC}
}

// Dashboard godoc
// @Summary      Sales dashboard
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopSellers godoc
// @Summary      Top-selling products
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "How many products"  default(5)
// @Success      200  {array}  dto.TopProduct
// @Router       /api/analytics/top-sellers [get]
func (h *AnalyticsHandler) TopSellers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.dashboardUC.GetTopSellers(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Replenishment suggestions
// @Description  Products at or below their reorder point, most depleted first, with suggested order quantities.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReplenishmentSuggestion
// @Router       /api/inventory/replenishment [get]
func (h *AnalyticsHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.replenishmentUC.GenerateReplenishmentList(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
