package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-backoffice/internal/application/dto"
	"github.com/jhoicas/pos-backoffice/internal/application/report"
	"github.com/jhoicas/pos-backoffice/internal/domain"
	"github.com/jhoicas/pos-backoffice/internal/domain/repository"
)

// fakeReportRepo devuelve datos fijos y captura el rango recibido para
// verificar el parseo de fechas.
type fakeReportRepo struct {
	start, end time.Time
}

func (r *fakeReportRepo) SalesSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummaryResult, error) {
	r.start, r.end = start, end
	return &repository.SalesSummaryResult{
		TotalOrders:       4,
		TotalSales:        decimal.RequireFromString("120.00"),
		AverageOrderValue: decimal.RequireFromString("30.00"),
	}, nil
}

func (r *fakeReportRepo) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	return []repository.TopProductResult{
		{ProductName: "Widget", QuantitySold: 7, TotalRevenue: decimal.RequireFromString("69.93")},
	}, nil
}

func (r *fakeReportRepo) DailySales(ctx context.Context, start, end time.Time) ([]repository.DailySalesResult, error) {
	return []repository.DailySalesResult{
		{Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), OrderCount: 2, TotalSales: decimal.RequireFromString("60.00")},
	}, nil
}

func (r *fakeReportRepo) CustomerSummary(ctx context.Context, start, end time.Time) (*repository.CustomerSummaryResult, error) {
	r.start, r.end = start, end
	return &repository.CustomerSummaryResult{TotalCustomers: 3, NewCustomers: 1}, nil
}

func (r *fakeReportRepo) TopCustomers(ctx context.Context, start, end time.Time, limit int) ([]repository.TopCustomerResult, error) {
	return []repository.TopCustomerResult{
		{CustomerName: "Alice", TotalOrders: 2, TotalSpent: decimal.RequireFromString("75.00")},
	}, nil
}

func TestSales_RangoValido(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := report.NewReportUseCase(repo)

	out, err := uc.Sales(context.Background(), dto.ReportRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), out.TotalOrders)
	assert.True(t, out.TotalSales.Equal(decimal.RequireFromString("120.00")))
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, "Widget", out.TopProducts[0].ProductName)
	require.Len(t, out.SalesByDate, 1)
	assert.Equal(t, "2024-01-15", out.SalesByDate[0].Date)

	// El fin del rango se extiende al final del día: el 31 queda incluido.
	assert.Equal(t, "2024-01-01", repo.start.Format("2006-01-02"))
	assert.Equal(t, "2024-01-31", repo.end.Format("2006-01-02"))
	assert.Equal(t, 23, repo.end.Hour(), "end debe extenderse al final del día")
}

func TestCustomers_RangoValido(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := report.NewReportUseCase(repo)

	out, err := uc.Customers(context.Background(), dto.ReportRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalCustomers)
	assert.Equal(t, int64(1), out.NewCustomers)
	require.Len(t, out.TopCustomers, 1)
	assert.Equal(t, "Alice", out.TopCustomers[0].CustomerName)
}

func TestReportes_RangoInvalido(t *testing.T) {
	uc := report.NewReportUseCase(&fakeReportRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.ReportRequest
	}{
		{"sin fechas", dto.ReportRequest{}},
		{"solo start", dto.ReportRequest{StartDate: "2024-01-01"}},
		{"solo end", dto.ReportRequest{EndDate: "2024-01-31"}},
		{"formato inválido", dto.ReportRequest{StartDate: "01/01/2024", EndDate: "2024-01-31"}},
		{"rango invertido", dto.ReportRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Sales(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			_, err = uc.Customers(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
