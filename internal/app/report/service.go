package report

import (
	"context"
	"time"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

// Service is a thin pass-through over the read-only reporting queries.
type Service struct {
	repo interfaces.ReportRepository
}

func NewService(repo interfaces.ReportRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) DailySales(ctx context.Context, date time.Time) (*interfaces.DailySalesReport, error) {
	return s.repo.DailySales(ctx, date)
}

func (s *Service) MonthlySales(ctx context.Context, year, month int) (*interfaces.MonthlySalesReport, error) {
	return s.repo.MonthlySales(ctx, year, month)
}

func (s *Service) PopularItems(ctx context.Context, limit int, rng interfaces.DateRange) ([]*interfaces.PopularItem, error) {
	return s.repo.PopularItems(ctx, limit, rng)
}

func (s *Service) PaymentMethods(ctx context.Context, rng interfaces.DateRange) ([]*interfaces.PaymentMethodReport, error) {
	return s.repo.PaymentMethods(ctx, rng)
}

func (s *Service) CustomerAnalytics(ctx context.Context) (*interfaces.CustomerAnalytics, error) {
	return s.repo.CustomerAnalytics(ctx, time.Now())
}

func (s *Service) TableUtilization(ctx context.Context, date time.Time) ([]*interfaces.TableUtilization, error) {
	return s.repo.TableUtilization(ctx, date)
}
