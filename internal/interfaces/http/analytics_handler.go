package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain"
)

// AnalyticsHandler expone las consultas agregadas sobre ventas (protegido).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// TotalSum godoc
// @Summary      Suma total de todas las ventas
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TotalResponse
// @Router       /api/sales/analytics/total [get]
func (h *AnalyticsHandler) TotalSum(c *fiber.Ctx) error {
	out, err := h.uc.SaleTotalSum(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TotalForWindow godoc
// @Summary      Suma de ventas de la ventana actual (día/mes/año)
// @Description  Excluye las ventas de tipo Batch.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        window  path  string  true  "Ventana: day, month o year"
// @Success      200  {object}  dto.TotalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/analytics/total/{window} [get]
func (h *AnalyticsHandler) TotalForWindow(c *fiber.Ctx) error {
	window := c.Params("window")
	out, err := h.uc.SaleTotalForWindow(c.Context(), window)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "window debe ser day, month o year"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TotalByReturnReason godoc
// @Summary      Suma de devoluciones del año por razón
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        reason  path  string  true  "Razón de devolución"
// @Success      200  {object}  dto.TotalResponse
// @Router       /api/sales/analytics/returns/{reason} [get]
func (h *AnalyticsHandler) TotalByReturnReason(c *fiber.Ctx) error {
	reason := c.Params("reason")
	out, err := h.uc.SaleTotalByReturnReason(c.Context(), reason)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CountSalesAndCredit godoc
// @Summary      Conteo de ventas del año y de ventas con crédito
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesAndCreditResponse
// @Router       /api/sales/analytics/count [get]
func (h *AnalyticsHandler) CountSalesAndCredit(c *fiber.Ctx) error {
	out, err := h.uc.CountSalesAndCredit(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CountFutureCreditDue godoc
// @Summary      Créditos que vencen en el futuro
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Router       /api/sales/analytics/credit/future [get]
func (h *AnalyticsHandler) CountFutureCreditDue(c *fiber.Ctx) error {
	out, err := h.uc.CountFutureCreditDue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CountPastCreditDue godoc
// @Summary      Créditos ya vencidos
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Router       /api/sales/analytics/credit/past [get]
func (h *AnalyticsHandler) CountPastCreditDue(c *fiber.Ctx) error {
	out, err := h.uc.CountPastCreditDue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Ranking de productos vendidos en la ventana actual
// @Description  Excluye los tipos Batch y Usage; la página se corta después de agregar.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        window  path   string  true   "Ventana: day, month o year"
// @Param        limit   query  int     false  "Límite"  default(25)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.TopProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/analytics/top/{window} [get]
func (h *AnalyticsHandler) TopProducts(c *fiber.Ctx) error {
	window := c.Params("window")
	page := dto.PageRequest{Limit: c.QueryInt("limit", 25), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.TopProducts(c.Context(), window, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "window debe ser day, month o year"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
