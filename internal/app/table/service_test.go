package table

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/mocks"
)

func TestCreateRejectsDuplicateNumber(t *testing.T) {
	repo := new(mocks.TableRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("NumberInUse", mock.Anything, "T-01", 0).Return(true, nil)

	_, err := svc.Create(context.Background(), &domain.Table{Number: "T-01", Capacity: 4})
	assert.ErrorIs(t, err, domain.ErrTableNumberTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteBlockedByActiveOrders(t *testing.T) {
	repo := new(mocks.TableRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("CountActiveOrders", mock.Anything, 2).Return(1, nil)

	err := svc.Delete(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrTableHasActiveOrders)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSetAvailabilityReloadsTable(t *testing.T) {
	repo := new(mocks.TableRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("UpdateAvailability", mock.Anything, 2, false).Return(nil)
	repo.On("FindByID", mock.Anything, 2).Return(&domain.Table{ID: 2, Number: "T-02", IsAvailable: false}, nil)

	table, err := svc.SetAvailability(context.Background(), 2, false)
	require.NoError(t, err)
	assert.False(t, table.IsAvailable)
	assert.Equal(t, "maintenance", table.DerivedStatus())
}

func TestUpdateKeepsNumberWithoutCheck(t *testing.T) {
	repo := new(mocks.TableRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("FindByID", mock.Anything, 2).Return(&domain.Table{ID: 2, Number: "T-02"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), &domain.Table{ID: 2, Number: "T-02", Capacity: 6})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "NumberInUse", mock.Anything, mock.Anything, mock.Anything)
}
