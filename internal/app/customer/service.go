package customer

import (
	"context"
	"time"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type Service struct {
	repo interfaces.CustomerRepository
	lgr  logger.Logger
}

func NewService(repo interfaces.CustomerRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, lgr: lgr}
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error) {
	return s.repo.List(ctx, search, limit, offset)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	taken, err := s.repo.PhoneInUse(ctx, c.Phone, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrPhoneTaken
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.lgr.Info("customer_create", "customer created", "", map[string]interface{}{
		"customer_id": c.ID,
	})
	return c, nil
}

func (s *Service) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	existing, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if c.Phone != existing.Phone {
		taken, err := s.repo.PhoneInUse(ctx, c.Phone, c.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrPhoneTaken
		}
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete refuses to remove a customer with orders still in flight.
func (s *Service) Delete(ctx context.Context, id int) error {
	active, err := s.repo.CountActiveOrders(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrCustomerHasActiveOrders
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) AnalyticsSummary(ctx context.Context) (*interfaces.CustomerAnalyticsSummary, error) {
	return s.repo.AnalyticsSummary(ctx, time.Now())
}
