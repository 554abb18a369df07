package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type TableHandler struct {
	svc interfaces.TableService
}

func NewTableHandler(svc interfaces.TableService) *TableHandler {
	return &TableHandler{svc: svc}
}

func (h *TableHandler) List(c *gin.Context) {
	var filter interfaces.TableFilter

	if v := c.Query("location"); v != "" {
		location := domain.TableLocation(v)
		if !location.Valid() {
			respondError(c, http.StatusBadRequest, "invalid location")
			return
		}
		filter.Location = &location
	}
	filter.AvailableOnly = c.Query("available") == "true"

	tables, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newTableViews(tables))
}

func (h *TableHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid table id")
		return
	}

	table, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newTableView(table))
}

type tableRequest struct {
	Number   string  `json:"table_number" binding:"required"`
	Capacity int     `json:"capacity" binding:"required,min=1"`
	Location string  `json:"location" binding:"required,oneof=indoor outdoor terrace"`
	QRCode   *string `json:"qr_code"`
}

func (h *TableHandler) Create(c *gin.Context) {
	var req tableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	table := &domain.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: domain.TableLocation(req.Location),
		QRCode:   req.QRCode,
	}
	created, err := h.svc.Create(c.Request.Context(), table)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondCreated(c, newTableView(created))
}

type updateTableRequest struct {
	Number      string  `json:"table_number" binding:"required"`
	Capacity    int     `json:"capacity" binding:"required,min=1"`
	Location    string  `json:"location" binding:"required,oneof=indoor outdoor terrace"`
	QRCode      *string `json:"qr_code"`
	IsAvailable *bool   `json:"is_available"`
}

func (h *TableHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid table id")
		return
	}

	var req updateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	table := &domain.Table{
		ID:          id,
		Number:      req.Number,
		Capacity:    req.Capacity,
		Location:    domain.TableLocation(req.Location),
		QRCode:      req.QRCode,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		table.IsAvailable = *req.IsAvailable
	}
	updated, err := h.svc.Update(c.Request.Context(), table)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newTableView(updated))
}

type availabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (h *TableHandler) SetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid table id")
		return
	}

	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	table, err := h.svc.SetAvailability(c.Request.Context(), id, *req.IsAvailable)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newTableView(table))
}

func (h *TableHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid table id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "table deleted")
}

func (h *TableHandler) Stats(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	stats, err := h.svc.Stats(c.Request.Context(), date)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, stats)
}
