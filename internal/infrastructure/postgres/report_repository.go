package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de ventas y clientes.
// Solo las órdenes en estado completed cuentan como venta.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesSummary devuelve conteo, total y ticket promedio del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *ReportRepo) SalesSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummaryResult, error) {
	const query = `
	SELECT
	    COUNT(*)                         AS total_orders,
	    COALESCE(SUM(total_amount), 0)   AS total_sales,
	    COALESCE(AVG(total_amount), 0)   AS average_order_value
	FROM orders
	WHERE created_at BETWEEN $1 AND $2
	  AND status = 'completed'`

	var res repository.SalesSummaryResult
	err := r.pool.QueryRow(ctx, query, start, end).
		Scan(&res.TotalOrders, &res.TotalSales, &res.AverageOrderValue)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesSummary: %w", err)
	}
	return &res, nil
}

// TopProducts devuelve los `limit` productos con más unidades vendidas en el período.
func (r *ReportRepo) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.name                           AS product_name,
	    COALESCE(SUM(oi.quantity), 0)    AS quantity_sold,
	    COALESCE(SUM(oi.subtotal), 0)    AS total_revenue
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	JOIN orders   o ON o.id = oi.order_id
	WHERE o.created_at BETWEEN $1 AND $2
	  AND o.status = 'completed'
	GROUP BY p.id, p.name
	ORDER BY quantity_sold DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductName, &row.QuantitySold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("reports.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailySales agrupa las ventas completadas por día del período.
func (r *ReportRepo) DailySales(ctx context.Context, start, end time.Time) ([]repository.DailySalesResult, error) {
	const query = `
	SELECT
	    DATE(created_at)                 AS date,
	    COUNT(*)                         AS order_count,
	    COALESCE(SUM(total_amount), 0)   AS total_sales
	FROM orders
	WHERE created_at BETWEEN $1 AND $2
	  AND status = 'completed'
	GROUP BY DATE(created_at)
	ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.DailySales: %w", err)
	}
	defer rows.Close()

	var results []repository.DailySalesResult
	for rows.Next() {
		var row repository.DailySalesResult
		if err := rows.Scan(&row.Date, &row.OrderCount, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("reports.DailySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CustomerSummary devuelve el total de clientes y los creados dentro del período.
func (r *ReportRepo) CustomerSummary(ctx context.Context, start, end time.Time) (*repository.CustomerSummaryResult, error) {
	const query = `
	SELECT
	    COUNT(*)                                                        AS total_customers,
	    COUNT(CASE WHEN created_at BETWEEN $1 AND $2 THEN 1 END)        AS new_customers
	FROM customers`

	var res repository.CustomerSummaryResult
	err := r.pool.QueryRow(ctx, query, start, end).
		Scan(&res.TotalCustomers, &res.NewCustomers)
	if err != nil {
		return nil, fmt.Errorf("reports.CustomerSummary: %w", err)
	}
	return &res, nil
}

// TopCustomers devuelve los `limit` clientes con mayor gasto en el período.
func (r *ReportRepo) TopCustomers(ctx context.Context, start, end time.Time, limit int) ([]repository.TopCustomerResult, error) {
	const query = `
	SELECT
	    c.name                           AS customer_name,
	    COUNT(o.id)                      AS total_orders,
	    COALESCE(SUM(o.total_amount), 0) AS total_spent
	FROM customers c
	JOIN orders o ON o.customer_id = c.id
	WHERE o.created_at BETWEEN $1 AND $2
	  AND o.status = 'completed'
	GROUP BY c.id, c.name
	ORDER BY total_spent DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.TopCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.TopCustomerResult
	for rows.Next() {
		var row repository.TopCustomerResult
		if err := rows.Scan(&row.CustomerName, &row.TotalOrders, &row.TotalSpent); err != nil {
			return nil, fmt.Errorf("reports.TopCustomers scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
