package http

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/domain"
)

// View types shape domain entities for JSON clients. Monetary values are
// rendered as decimal strings.

type userView struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	IsActive  bool    `json:"is_active"`
}

func newUserView(u *domain.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
	}
}

type categoryView struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	ImageURL       *string   `json:"image_url,omitempty"`
	SortOrder      int       `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	ItemCount      int       `json:"item_count"`
	AvailableCount int       `json:"available_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newCategoryView(c *domain.Category) categoryView {
	return categoryView{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		SortOrder:      c.SortOrder,
		IsActive:       c.IsActive,
		ItemCount:      c.ItemCount,
		AvailableCount: c.AvailableCount,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func newCategoryViews(categories []*domain.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, newCategoryView(c))
	}
	return views
}

type menuItemView struct {
	ID              int             `json:"id"`
	CategoryID      int             `json:"category_id"`
	CategoryName    *string         `json:"category_name,omitempty"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        *string         `json:"image_url,omitempty"`
	Ingredients     *string         `json:"ingredients,omitempty"`
	Allergens       *string         `json:"allergens,omitempty"`
	PreparationTime int             `json:"preparation_time"`
	Calories        *int            `json:"calories,omitempty"`
	SortOrder       int             `json:"sort_order"`
	IsAvailable     bool            `json:"is_available"`
	IsFeatured      bool            `json:"is_featured"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newMenuItemView(item *domain.MenuItem) menuItemView {
	return menuItemView{
		ID:              item.ID,
		CategoryID:      item.CategoryID,
		CategoryName:    item.CategoryName,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		ImageURL:        item.ImageURL,
		Ingredients:     item.Ingredients,
		Allergens:       item.Allergens,
		PreparationTime: item.PreparationTime,
		Calories:        item.Calories,
		SortOrder:       item.SortOrder,
		IsAvailable:     item.IsAvailable,
		IsFeatured:      item.IsFeatured,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func newMenuItemViews(items []*domain.MenuItem) []menuItemView {
	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newMenuItemView(item))
	}
	return views
}

type customerView struct {
	ID            int             `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Email         *string         `json:"email,omitempty"`
	Phone         string          `json:"phone"`
	Address       *string         `json:"address,omitempty"`
	BirthDate     *time.Time      `json:"birth_date,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	LoyaltyPoints int             `json:"loyalty_points"`
	OrderCount    int             `json:"order_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastOrderDate *time.Time      `json:"last_order_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newCustomerView(c *domain.Customer) customerView {
	return customerView{
		ID:            c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		BirthDate:     c.BirthDate,
		Notes:         c.Notes,
		LoyaltyPoints: c.LoyaltyPoints,
		OrderCount:    c.OrderCount,
		TotalSpent:    c.TotalSpent,
		LastOrderDate: c.LastOrderDate,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func newCustomerViews(customers []*domain.Customer) []customerView {
	views := make([]customerView, 0, len(customers))
	for _, c := range customers {
		views = append(views, newCustomerView(c))
	}
	return views
}

type tableView struct {
	ID            int        `json:"id"`
	Number        string     `json:"table_number"`
	Capacity      int        `json:"capacity"`
	Location      string     `json:"location"`
	QRCode        *string    `json:"qr_code,omitempty"`
	IsAvailable   bool       `json:"is_available"`
	Status        string     `json:"status"`
	ActiveOrders  int        `json:"active_orders"`
	LastOrderTime *time.Time `json:"last_order_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func newTableView(t *domain.Table) tableView {
	return tableView{
		ID:            t.ID,
		Number:        t.Number,
		Capacity:      t.Capacity,
		Location:      string(t.Location),
		QRCode:        t.QRCode,
		IsAvailable:   t.IsAvailable,
		Status:        t.DerivedStatus(),
		ActiveOrders:  t.ActiveOrders,
		LastOrderTime: t.LastOrderTime,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func newTableViews(tables []*domain.Table) []tableView {
	views := make([]tableView, 0, len(tables))
	for _, t := range tables {
		views = append(views, newTableView(t))
	}
	return views
}

type orderLineView struct {
	ID              int             `json:"id"`
	MenuItemID      int             `json:"menu_item_id"`
	ItemName        string          `json:"item_name"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	SpecialRequests *string         `json:"special_requests,omitempty"`
}

type orderView struct {
	ID                  int             `json:"id"`
	OrderNumber         string          `json:"order_number"`
	CustomerID          *int            `json:"customer_id,omitempty"`
	CustomerName        *string         `json:"customer_name,omitempty"`
	CustomerPhone       *string         `json:"customer_phone,omitempty"`
	TableID             *int            `json:"table_id,omitempty"`
	TableNumber         *string         `json:"table_number,omitempty"`
	WaiterName          *string         `json:"waiter_name,omitempty"`
	OrderType           string          `json:"order_type"`
	Status              string          `json:"status"`
	PaymentStatus       string          `json:"payment_status"`
	PaymentMethod       *string         `json:"payment_method,omitempty"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	SpecialInstructions *string         `json:"special_instructions,omitempty"`
	ItemCount           int             `json:"item_count"`
	Items               []orderLineView `json:"items,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func newOrderView(o *domain.Order) orderView {
	view := orderView{
		ID:                  o.ID,
		OrderNumber:         o.Number,
		CustomerID:          o.CustomerID,
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		TableID:             o.TableID,
		TableNumber:         o.TableNumber,
		WaiterName:          o.WaiterName,
		OrderType:           string(o.Type),
		Status:              string(o.Status),
		PaymentStatus:       string(o.PaymentStatus),
		Subtotal:            o.Subtotal,
		TaxAmount:           o.TaxAmount,
		TotalAmount:         o.TotalAmount,
		SpecialInstructions: o.SpecialInstructions,
		ItemCount:           o.ItemCount,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
	if o.PaymentMethod != nil {
		method := string(*o.PaymentMethod)
		view.PaymentMethod = &method
	}
	for _, l := range o.Lines {
		view.Items = append(view.Items, orderLineView{
			ID:              l.ID,
			MenuItemID:      l.MenuItemID,
			ItemName:        l.ItemName,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			TotalPrice:      l.TotalPrice,
			SpecialRequests: l.SpecialRequests,
		})
	}
	return view
}

func newOrderViews(orders []*domain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}
