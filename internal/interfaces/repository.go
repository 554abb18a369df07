package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/domain"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status *domain.Status
	Date   *time.Time
	Limit  int
	Offset int
}

// OrderSummary is the per-day aggregate exposed at /orders/stats/summary.
type OrderSummary struct {
	TotalOrders       int             `json:"total_orders"`
	CompletedOrders   int             `json:"completed_orders"`
	PendingOrders     int             `json:"pending_orders"`
	PreparingOrders   int             `json:"preparing_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

type OrderRepository interface {
	// Create persists the order and all of its lines in a single
	// transaction; on error nothing is committed.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]*domain.Order, error)
	// Update persists lifecycle fields (status, payment_status,
	// payment_method, updated_at) for an existing order.
	Update(ctx context.Context, order *domain.Order) error
	DailySummary(ctx context.Context, date time.Time) (*OrderSummary, error)
}

// CatalogResolver is the order builder's view of the menu: current price and
// availability, read from the store at order time.
type CatalogResolver interface {
	ResolveItem(ctx context.Context, menuItemID int) (*domain.MenuItemRef, error)
}

// MenuItemFilter narrows menu item listings.
type MenuItemFilter struct {
	CategoryID    *int
	AvailableOnly bool
	Search        string
	Limit         int
	Offset        int
}

type MenuRepository interface {
	CatalogResolver

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	FindCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) error
	UpdateCategory(ctx context.Context, c *domain.Category) error
	DeleteCategory(ctx context.Context, id int) error
	CountCategoryItems(ctx context.Context, categoryID int) (int, error)

	ListItems(ctx context.Context, filter MenuItemFilter) ([]*domain.MenuItem, error)
	FindItemByID(ctx context.Context, id int) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	EmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateProfile(ctx context.Context, u *domain.User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

// CustomerAnalyticsSummary is the customer-base aggregate; averages count
// only customers with paid orders.
type CustomerAnalyticsSummary struct {
	TotalCustomers        int             `json:"total_customers"`
	NewCustomersThisMonth int             `json:"new_customers_this_month"`
	AverageCustomerValue  decimal.Decimal `json:"average_customer_value"`
}

type CustomerRepository interface {
	List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error)
	FindByID(ctx context.Context, id int) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int) error
	PhoneInUse(ctx context.Context, phone string, excludeID int) (bool, error)
	CountActiveOrders(ctx context.Context, customerID int) (int, error)
	AnalyticsSummary(ctx context.Context, now time.Time) (*CustomerAnalyticsSummary, error)
}

// TableFilter narrows table listings.
type TableFilter struct {
	Location      *domain.TableLocation
	AvailableOnly bool
}

// LocationStats is the per-location slice of the table stats summary.
type LocationStats struct {
	Location   domain.TableLocation `json:"location"`
	TableCount int                  `json:"table_count"`
	Capacity   int                  `json:"location_capacity"`
}

// TableStats is the aggregate exposed at /tables/stats/summary.
type TableStats struct {
	TotalTables       int             `json:"total_tables"`
	AvailableTables   int             `json:"available_tables"`
	MaintenanceTables int             `json:"maintenance_tables"`
	TotalCapacity     int             `json:"total_capacity"`
	OccupiedTables    int             `json:"occupied_tables"`
	ByLocation        []LocationStats `json:"by_location"`
}

type TableRepository interface {
	List(ctx context.Context, filter TableFilter) ([]*domain.Table, error)
	FindByID(ctx context.Context, id int) (*domain.Table, error)
	Create(ctx context.Context, t *domain.Table) error
	Update(ctx context.Context, t *domain.Table) error
	UpdateAvailability(ctx context.Context, id int, available bool) error
	Delete(ctx context.Context, id int) error
	NumberInUse(ctx context.Context, number string, excludeID int) (bool, error)
	CountActiveOrders(ctx context.Context, tableID int) (int, error)
	Stats(ctx context.Context, date time.Time) (*TableStats, error)
}

// HourlySales is one zero-filled hour slot of a daily sales report.
type HourlySales struct {
	Hour    string          `json:"hour"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DailySalesReport struct {
	Date            string          `json:"date"`
	TotalOrders     int             `json:"total_orders"`
	CompletedOrders int             `json:"completed_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"`
	CashPayments    int             `json:"cash_payments"`
	CardPayments    int             `json:"card_payments"`
	HourlyBreakdown []HourlySales   `json:"hourly_breakdown"`
}

// DaySales is one day slice of a monthly sales report.
type DaySales struct {
	Day     int             `json:"day"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type MonthlySalesReport struct {
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	TotalOrders    int             `json:"total_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	AvgOrderValue  decimal.Decimal `json:"avg_order_value"`
	DailyBreakdown []DaySales      `json:"daily_breakdown"`
}

type PopularItem struct {
	MenuItemID   int             `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"category_name"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	OrderCount   int             `json:"order_count"`
}

type PaymentMethodReport struct {
	Method           string          `json:"payment_method"`
	TransactionCount int             `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// TopCustomer is one row of the customer analytics report, ranked by paid
// spend.
type TopCustomer struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	TotalOrders   int             `json:"total_orders"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LoyaltyPoints int             `json:"loyalty_points"`
}

type CustomerAnalytics struct {
	Summary      CustomerAnalyticsSummary `json:"summary"`
	TopCustomers []TopCustomer            `json:"top_customers"`
}

// TableUtilization is one table's order volume and paid revenue for a date.
type TableUtilization struct {
	TableNumber   string          `json:"table_number"`
	Capacity      int             `json:"capacity"`
	OrdersCount   int             `json:"orders_count"`
	Revenue       decimal.Decimal `json:"revenue"`
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// DateRange bounds report queries; zero values mean unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ReportRepository is the read-only projection layer over committed orders.
// Revenue figures count only payment_status = 'paid'.
type ReportRepository interface {
	DailySales(ctx context.Context, date time.Time) (*DailySalesReport, error)
	MonthlySales(ctx context.Context, year, month int) (*MonthlySalesReport, error)
	PopularItems(ctx context.Context, limit int, rng DateRange) ([]*PopularItem, error)
	PaymentMethods(ctx context.Context, rng DateRange) ([]*PaymentMethodReport, error)
	CustomerAnalytics(ctx context.Context, now time.Time) (*CustomerAnalytics, error)
	TableUtilization(ctx context.Context, date time.Time) ([]*TableUtilization, error)
}
