package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) DailySummary(ctx context.Context, date time.Time) (*interfaces.OrderSummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.OrderSummary), args.Error(1)
}

type CatalogResolver struct {
	mock.Mock
}

func (m *CatalogResolver) ResolveItem(ctx context.Context, menuItemID int) (*domain.MenuItemRef, error) {
	args := m.Called(ctx, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItemRef), args.Error(1)
}

type MessagePublisher struct {
	mock.Mock
}

func (m *MessagePublisher) PublishOrderCreated(ctx context.Context, msg interfaces.OrderCreatedMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessagePublisher) PublishStatusChanged(ctx context.Context, msg interfaces.StatusChangedMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessagePublisher) PublishPaymentChanged(ctx context.Context, msg interfaces.PaymentChangedMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MenuCache struct {
	mock.Mock
}

func (m *MenuCache) Get(ctx context.Context, key string, dest any) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MenuCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MenuCache) Invalidate(ctx context.Context, pattern string) error {
	args := m.Called(ctx, pattern)
	return args.Error(0)
}

type MenuRepository struct {
	mock.Mock
}

func (m *MenuRepository) ResolveItem(ctx context.Context, menuItemID int) (*domain.MenuItemRef, error) {
	args := m.Called(ctx, menuItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItemRef), args.Error(1)
}

func (m *MenuRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MenuRepository) FindCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MenuRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MenuRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MenuRepository) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MenuRepository) CountCategoryItems(ctx context.Context, categoryID int) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MenuRepository) ListItems(ctx context.Context, filter interfaces.MenuItemFilter) ([]*domain.MenuItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) FindItemByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MenuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuRepository) DeleteItem(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CustomerRepository struct {
	mock.Mock
}

func (m *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

func (m *CustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CustomerRepository) PhoneInUse(ctx context.Context, phone string, excludeID int) (bool, error) {
	args := m.Called(ctx, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *CustomerRepository) CountActiveOrders(ctx context.Context, customerID int) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

func (m *CustomerRepository) AnalyticsSummary(ctx context.Context, now time.Time) (*interfaces.CustomerAnalyticsSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.CustomerAnalyticsSummary), args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func (m *TableRepository) List(ctx context.Context, filter interfaces.TableFilter) ([]*domain.Table, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Table), args.Error(1)
}

func (m *TableRepository) FindByID(ctx context.Context, id int) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TableRepository) Update(ctx context.Context, t *domain.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TableRepository) UpdateAvailability(ctx context.Context, id int, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *TableRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TableRepository) NumberInUse(ctx context.Context, number string, excludeID int) (bool, error) {
	args := m.Called(ctx, number, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *TableRepository) CountActiveOrders(ctx context.Context, tableID int) (int, error) {
	args := m.Called(ctx, tableID)
	return args.Int(0), args.Error(1)
}

func (m *TableRepository) Stats(ctx context.Context, date time.Time) (*interfaces.TableStats, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.TableStats), args.Error(1)
}

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) DailySales(ctx context.Context, date time.Time) (*interfaces.DailySalesReport, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.DailySalesReport), args.Error(1)
}

func (m *ReportRepository) MonthlySales(ctx context.Context, year, month int) (*interfaces.MonthlySalesReport, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.MonthlySalesReport), args.Error(1)
}

func (m *ReportRepository) PopularItems(ctx context.Context, limit int, rng interfaces.DateRange) ([]*interfaces.PopularItem, error) {
	args := m.Called(ctx, limit, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*interfaces.PopularItem), args.Error(1)
}

func (m *ReportRepository) PaymentMethods(ctx context.Context, rng interfaces.DateRange) ([]*interfaces.PaymentMethodReport, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*interfaces.PaymentMethodReport), args.Error(1)
}

func (m *ReportRepository) CustomerAnalytics(ctx context.Context, now time.Time) (*interfaces.CustomerAnalytics, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.CustomerAnalytics), args.Error(1)
}

func (m *ReportRepository) TableUtilization(ctx context.Context, date time.Time) ([]*interfaces.TableUtilization, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*interfaces.TableUtilization), args.Error(1)
}
