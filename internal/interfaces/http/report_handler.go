package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/domain"
)

// ReportHandler maneja los reportes de ventas y clientes (protegido).
// El rango llega en el body JSON: {"start_date": "YYYY-MM-DD", "end_date": "YYYY-MM-DD"}.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Sales POST /api/reports/sales
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Sales(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date son requeridos (YYYY-MM-DD)"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Customers POST /api/reports/customers
func (h *ReportHandler) Customers(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Customers(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date son requeridos (YYYY-MM-DD)"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
