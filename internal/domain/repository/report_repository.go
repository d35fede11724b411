package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResult totales de ventas del período (solo órdenes completed).
type SalesSummaryResult struct {
	TotalOrders       int64
	TotalSales        decimal.Decimal
	AverageOrderValue decimal.Decimal
}

// TopProductResult producto más vendido del período.
type TopProductResult struct {
	ProductName  string
	QuantitySold int64
	TotalRevenue decimal.Decimal
}

// DailySalesResult ventas agregadas por día.
type DailySalesResult struct {
	Date       time.Time
	OrderCount int64
	TotalSales decimal.Decimal
}

// CustomerSummaryResult totales de clientes del período.
type CustomerSummaryResult struct {
	TotalCustomers int64
	NewCustomers   int64
}

// TopCustomerResult cliente con mayor gasto del período.
type TopCustomerResult struct {
	CustomerName string
	TotalOrders  int64
	TotalSpent   decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes de ventas y clientes.
type ReportRepository interface {
	SalesSummary(ctx context.Context, start, end time.Time) (*SalesSummaryResult, error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)
	DailySales(ctx context.Context, start, end time.Time) ([]DailySalesResult, error)
	CustomerSummary(ctx context.Context, start, end time.Time) (*CustomerSummaryResult, error)
	TopCustomers(ctx context.Context, start, end time.Time, limit int) ([]TopCustomerResult, error)
}
