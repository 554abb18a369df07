package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
	"github.com/YelzhanWeb/restaurant/internal/mocks"
)

func TestCustomerAnalytics(t *testing.T) {
	repo := new(mocks.ReportRepository)
	svc := NewService(repo)

	want := &interfaces.CustomerAnalytics{
		Summary: interfaces.CustomerAnalyticsSummary{
			TotalCustomers:        42,
			NewCustomersThisMonth: 5,
			AverageCustomerValue:  decimal.RequireFromString("73.10"),
		},
		TopCustomers: []interfaces.TopCustomer{
			{Name: "Aida Bekova", Phone: "+77001234567", TotalOrders: 14, TotalSpent: decimal.RequireFromString("512.30"), LoyaltyPoints: 120},
		},
	}
	repo.On("CustomerAnalytics", mock.Anything, mock.AnythingOfType("time.Time")).Return(want, nil)

	got, err := svc.CustomerAnalytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTableUtilization(t *testing.T) {
	repo := new(mocks.ReportRepository)
	svc := NewService(repo)

	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	want := []*interfaces.TableUtilization{
		{TableNumber: "T1", Capacity: 4, OrdersCount: 6, Revenue: decimal.RequireFromString("214.80"), AvgOrderValue: decimal.RequireFromString("35.80")},
		{TableNumber: "T2", Capacity: 2, OrdersCount: 0, Revenue: decimal.Zero, AvgOrderValue: decimal.Zero},
	}
	repo.On("TableUtilization", mock.Anything, date).Return(want, nil)

	got, err := svc.TableUtilization(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
