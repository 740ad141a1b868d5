package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/TanmayElinje/inventory-pro/internal/application/dto"
	"github.com/TanmayElinje/inventory-pro/internal/application/ledger"
	"github.com/TanmayElinje/inventory-pro/internal/domain"
)

// MovementHandler handles stock adjustments and movement history.
type MovementHandler struct {
	adjustUC  *ledger.ApplyAdjustmentUseCase
	historyUC *ledger.HistoryUseCase
}

// NewMovementHandler builds the handler.
func NewMovementHandler(adjustUC *ledger.ApplyAdjustmentUseCase, historyUC *ledger.HistoryUseCase) *MovementHandler {
	return &MovementHandler{adjustUC: adjustUC, historyUC: historyUC}
}

// AdjustStock godoc
// @Summary      Adjust product stock
// @Description  Applies a signed quantity delta and records the movement atomically. Stock can never go below zero.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Product ID"
// @Param        body  body  dto.AdjustStockRequest  true  "quantity_change (non-zero), optional reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjust-stock [post]
func (h *MovementHandler) AdjustStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.QuantityChange == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity_change is required"})
	}
	if *in.QuantityChange == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity_change must be non-zero"})
	}
	out, err := h.adjustUC.ApplyAdjustment(c.Context(), ledger.AdjustStockInput{
		ProductID:      id,
		QuantityChange: *in.QuantityChange,
		Reason:         in.Reason,
		UserID:         GetUserID(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock cannot go below zero"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity_change must be non-zero"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Movement history
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filter by product"
// @Param        limit       query  int     false  "Page size"  default(20)
// @Param        offset      query  int     false  "Offset"     default(0)
// @Success      200  {object}  dto.StockMovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	productID := c.Query("product_id")
	out, err := h.historyUC.ListMovements(c.Context(), productID, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductMovements godoc
// @Summary      Movement history for one product
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Product ID"
// @Param        limit   query  int     false  "Page size"  default(20)
// @Param        offset  query  int     false  "Offset"     default(0)
// @Success      200  {object}  dto.StockMovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *MovementHandler) ProductMovements(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	limit, offset := pageParams(c)
	out, err := h.historyUC.ListMovements(c.Context(), id, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
