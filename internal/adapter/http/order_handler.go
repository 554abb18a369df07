package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type OrderHandler struct {
	svc interfaces.OrderService
}

func NewOrderHandler(svc interfaces.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderLineRequest struct {
	MenuItemID      int     `json:"menu_item_id" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,min=1"`
	SpecialRequests *string `json:"special_requests"`
}

type createOrderRequest struct {
	CustomerID          *int               `json:"customer_id"`
	TableID             *int               `json:"table_id"`
	OrderType           string             `json:"order_type" binding:"required"`
	Items               []orderLineRequest `json:"items" binding:"required"`
	SpecialInstructions *string            `json:"special_instructions"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user := currentUser(c)
	if user == nil {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	lines := make([]interfaces.OrderLineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, interfaces.OrderLineRequest{
			MenuItemID:      item.MenuItemID,
			Quantity:        item.Quantity,
			SpecialRequests: item.SpecialRequests,
		})
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), interfaces.CreateOrderCommand{
		CustomerID:          req.CustomerID,
		TableID:             req.TableID,
		UserID:              user.ID,
		OrderType:           req.OrderType,
		Lines:               lines,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondCreated(c, newOrderView(order))
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newOrderView(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	var filter interfaces.OrderFilter

	if s := c.Query("status"); s != "" {
		status := domain.Status(s)
		filter.Status = &status
	}
	if d := c.Query("date"); d != "" {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		filter.Date = &date
	}
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := h.svc.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newOrderViews(orders))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newOrderView(order))
}

type updatePaymentRequest struct {
	PaymentStatus string  `json:"payment_status" binding:"required"`
	PaymentMethod *string `json:"payment_method"`
}

func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var method *domain.PaymentMethod
	if req.PaymentMethod != nil {
		m := domain.PaymentMethod(*req.PaymentMethod)
		method = &m
	}

	order, err := h.svc.UpdatePayment(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus), method)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newOrderView(order))
}

func (h *OrderHandler) DailySummary(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	summary, err := h.svc.DailySummary(c.Request.Context(), date)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, summary)
}
