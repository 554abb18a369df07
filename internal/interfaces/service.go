package interfaces

import (
	"context"
	"time"

	"github.com/YelzhanWeb/restaurant/internal/domain"
)

// OrderLineRequest is one requested line before catalog resolution. The
// client never supplies a price; unit prices come from the catalog at
// creation time.
type OrderLineRequest struct {
	MenuItemID      int
	Quantity        int
	SpecialRequests *string
}

type CreateOrderCommand struct {
	CustomerID          *int
	TableID             *int
	UserID              int
	OrderType           string
	Lines               []OrderLineRequest
	SpecialInstructions *string
}

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error)
	GetOrder(ctx context.Context, id int) (*domain.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error)
	UpdatePayment(ctx context.Context, id int, status domain.PaymentStatus, method *domain.PaymentMethod) (*domain.Order, error)
	DailySummary(ctx context.Context, date time.Time) (*OrderSummary, error)
}

// OrderNumberGenerator yields globally unique, human-readable order numbers.
// Injectable so tests and future schemes (sequences, ULIDs) can swap in.
type OrderNumberGenerator interface {
	Next(t time.Time) string
}

type RegisterCommand struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     *string
	Role      domain.Role
}

type UpdateProfileCommand struct {
	UserID    int
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

// AuthResult pairs the authenticated user with a signed bearer token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int, current, next string) error
	// Authenticate verifies a bearer token and loads the active user it
	// names; used by HTTP middleware.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type MenuService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	ListItems(ctx context.Context, filter MenuItemFilter) ([]*domain.MenuItem, error)
	GetItem(ctx context.Context, id int) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id int) error
}

type CustomerService interface {
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error)
	Get(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int) error
	AnalyticsSummary(ctx context.Context) (*CustomerAnalyticsSummary, error)
}

type TableService interface {
	List(ctx context.Context, filter TableFilter) ([]*domain.Table, error)
	Get(ctx context.Context, id int) (*domain.Table, error)
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	Update(ctx context.Context, t *domain.Table) (*domain.Table, error)
	SetAvailability(ctx context.Context, id int, available bool) (*domain.Table, error)
	Delete(ctx context.Context, id int) error
	Stats(ctx context.Context, date time.Time) (*TableStats, error)
}

type ReportService interface {
	DailySales(ctx context.Context, date time.Time) (*DailySalesReport, error)
	MonthlySales(ctx context.Context, year, month int) (*MonthlySalesReport, error)
	PopularItems(ctx context.Context, limit int, rng DateRange) ([]*PopularItem, error)
	PaymentMethods(ctx context.Context, rng DateRange) ([]*PaymentMethodReport, error)
	CustomerAnalytics(ctx context.Context) (*CustomerAnalytics, error)
	TableUtilization(ctx context.Context, date time.Time) ([]*TableUtilization, error)
}
