package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type CustomerHandler struct {
	svc interfaces.CustomerService
}

func NewCustomerHandler(svc interfaces.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	customers, err := h.svc.List(c.Request.Context(), c.Query("search"), limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newCustomerViews(customers))
}

func (h *CustomerHandler) AnalyticsSummary(c *gin.Context) {
	summary, err := h.svc.AnalyticsSummary(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, summary)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newCustomerView(customer))
}

type customerRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         string  `json:"phone" binding:"required"`
	Address       *string `json:"address"`
	BirthDate     *string `json:"birth_date"`
	Notes         *string `json:"notes"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

func (r customerRequest) toDomain() (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		Notes:         r.Notes,
		LoyaltyPoints: r.LoyaltyPoints,
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", *r.BirthDate)
		if err != nil {
			return nil, err
		}
		customer.BirthDate = &birth
	}
	return customer, nil
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := req.toDomain()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid birth_date, expected YYYY-MM-DD")
		return
	}
	created, err := h.svc.Create(c.Request.Context(), customer)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondCreated(c, newCustomerView(created))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := req.toDomain()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid birth_date, expected YYYY-MM-DD")
		return
	}
	customer.ID = id
	updated, err := h.svc.Update(c.Request.Context(), customer)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newCustomerView(updated))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "customer deleted")
}
