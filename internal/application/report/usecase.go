package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// topLimit cantidad de filas en los rankings de productos y clientes.
const topLimit = 10

// ReportUseCase reportes agregados de ventas y clientes sobre un rango de fechas.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// parseRange valida y parsea el rango pedido. El fin del rango se extiende al
// final del día para que "2024-01-31" incluya las ventas de ese día.
func parseRange(in dto.ReportRequest) (time.Time, time.Time, error) {
	if in.StartDate == "" || in.EndDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date y end_date son requeridos", domain.ErrInvalidInput)
	}
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date inválido", domain.ErrInvalidInput)
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date inválido", domain.ErrInvalidInput)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date anterior a start_date", domain.ErrInvalidInput)
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}

// Sales genera el reporte de ventas: totales, top de productos y desglose diario.
func (uc *ReportUseCase) Sales(ctx context.Context, in dto.ReportRequest) (*dto.SalesReportResponse, error) {
	start, end, err := parseRange(in)
	if err != nil {
		return nil, err
	}
	summary, err := uc.repo.SalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	topProducts, err := uc.repo.TopProducts(ctx, start, end, topLimit)
	if err != nil {
		return nil, err
	}
	daily, err := uc.repo.DailySales(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesReportResponse{
		TotalSales:        summary.TotalSales,
		TotalOrders:       summary.TotalOrders,
		AverageOrderValue: summary.AverageOrderValue,
		TopProducts:       make([]dto.TopProductReport, 0, len(topProducts)),
		SalesByDate:       make([]dto.DailySalesReport, 0, len(daily)),
	}
	for _, p := range topProducts {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductReport{
			ProductName:  p.ProductName,
			QuantitySold: p.QuantitySold,
			TotalRevenue: p.TotalRevenue,
		})
	}
	for _, d := range daily {
		resp.SalesByDate = append(resp.SalesByDate, dto.DailySalesReport{
			Date:       d.Date.Format("2006-01-02"),
			OrderCount: d.OrderCount,
			TotalSales: d.TotalSales,
		})
	}
	return resp, nil
}

// Customers genera el reporte de actividad de clientes.
func (uc *ReportUseCase) Customers(ctx context.Context, in dto.ReportRequest) (*dto.CustomerReportResponse, error) {
	start, end, err := parseRange(in)
	if err != nil {
		return nil, err
	}
	summary, err := uc.repo.CustomerSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	topCustomers, err := uc.repo.TopCustomers(ctx, start, end, topLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.CustomerReportResponse{
		TotalCustomers: summary.TotalCustomers,
		NewCustomers:   summary.NewCustomers,
		TopCustomers:   make([]dto.TopCustomerReport, 0, len(topCustomers)),
	}
	for _, c := range topCustomers {
		resp.TopCustomers = append(resp.TopCustomers, dto.TopCustomerReport{
			CustomerName: c.CustomerName,
			TotalOrders:  c.TotalOrders,
			TotalSpent:   c.TotalSpent,
		})
	}
	return resp, nil
}
