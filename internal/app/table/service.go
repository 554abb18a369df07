package table

import (
	"context"
	"time"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type Service struct {
	repo interfaces.TableRepository
	lgr  logger.Logger
}

func NewService(repo interfaces.TableRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, lgr: lgr}
}

func (s *Service) List(ctx context.Context, filter interfaces.TableFilter) ([]*domain.Table, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Table, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	taken, err := s.repo.NumberInUse(ctx, t.Number, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrTableNumberTaken
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.lgr.Info("table_create", "table created", "", map[string]interface{}{
		"table_id":     t.ID,
		"table_number": t.Number,
	})
	return t, nil
}

func (s *Service) Update(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	existing, err := s.repo.FindByID(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	if t.Number != existing.Number {
		taken, err := s.repo.NumberInUse(ctx, t.Number, t.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrTableNumberTaken
		}
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) SetAvailability(ctx context.Context, id int, available bool) (*domain.Table, error) {
	if err := s.repo.UpdateAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete refuses to remove a table with orders still in flight.
func (s *Service) Delete(ctx context.Context, id int) error {
	active, err := s.repo.CountActiveOrders(ctx, id)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.ErrTableHasActiveOrders
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) Stats(ctx context.Context, date time.Time) (*interfaces.TableStats, error) {
	return s.repo.Stats(ctx, date)
}
