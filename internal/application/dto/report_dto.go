package dto

import "github.com/shopspring/decimal"

// ReportRequest rango de fechas para los reportes. Ambas fechas son
// obligatorias, formato YYYY-MM-DD.
type ReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TopProductReport producto más vendido.
type TopProductReport struct {
	ProductName  string          `json:"product_name"`
	QuantitySold int64           `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// DailySalesReport ventas de un día.
type DailySalesReport struct {
	Date       string          `json:"date"`
	OrderCount int64           `json:"order_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// SalesReportResponse reporte de ventas del período (solo órdenes completed).
type SalesReportResponse struct {
	TotalSales        decimal.Decimal    `json:"total_sales"`
	TotalOrders       int64              `json:"total_orders"`
	AverageOrderValue decimal.Decimal    `json:"average_order_value"`
	TopProducts       []TopProductReport `json:"top_products"`
	SalesByDate       []DailySalesReport `json:"sales_by_date"`
}

// TopCustomerReport cliente con mayor gasto.
type TopCustomerReport struct {
	CustomerName string          `json:"customer_name"`
	TotalOrders  int64           `json:"total_orders"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// CustomerReportResponse reporte de actividad de clientes del período.
type CustomerReportResponse struct {
	TotalCustomers int64               `json:"total_customers"`
	NewCustomers   int64               `json:"new_customers"`
	TopCustomers   []TopCustomerReport `json:"top_customers"`
}
