package customer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
	"github.com/YelzhanWeb/restaurant/internal/mocks"
)

func TestCreateRejectsDuplicatePhone(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("PhoneInUse", mock.Anything, "+77001234567", 0).Return(true, nil)

	_, err := svc.Create(context.Background(), &domain.Customer{Phone: "+77001234567"})
	assert.ErrorIs(t, err, domain.ErrPhoneTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("PhoneInUse", mock.Anything, "+77001234567", 0).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Customer).ID = 11 }).Return(nil)

	created, err := svc.Create(context.Background(), &domain.Customer{FirstName: "Aida", Phone: "+77001234567"})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
}

func TestUpdateChecksPhoneOnlyWhenChanged(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("FindByID", mock.Anything, 11).Return(&domain.Customer{ID: 11, Phone: "+77001234567"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), &domain.Customer{ID: 11, Phone: "+77001234567"})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "PhoneInUse", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteBlockedByActiveOrders(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("CountActiveOrders", mock.Anything, 11).Return(2, nil)

	err := svc.Delete(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrCustomerHasActiveOrders)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc := NewService(repo, logger.New("test"))

	repo.On("CountActiveOrders", mock.Anything, 11).Return(0, nil)
	repo.On("Delete", mock.Anything, 11).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 11))
}

func TestAnalyticsSummary(t *testing.T) {
	repo := new(mocks.CustomerRepository)
	svc := NewService(repo, logger.New("test"))

	want := &interfaces.CustomerAnalyticsSummary{
		TotalCustomers:        120,
		NewCustomersThisMonth: 8,
		AverageCustomerValue:  decimal.RequireFromString("56.40"),
	}
	repo.On("AnalyticsSummary", mock.Anything, mock.AnythingOfType("time.Time")).Return(want, nil)

	got, err := svc.AnalyticsSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
