package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type ReportHandler struct {
	svc interfaces.ReportService
}

func NewReportHandler(svc interfaces.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) DailySales(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	report, err := h.svc.DailySales(c.Request.Context(), date)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, report)
}

func (h *ReportHandler) MonthlySales(c *gin.Context) {
	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if month < 1 || month > 12 {
		respondError(c, http.StatusBadRequest, "invalid month")
		return
	}

	report, err := h.svc.MonthlySales(c.Request.Context(), year, month)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, report)
}

func parseDateRange(c *gin.Context) (interfaces.DateRange, bool) {
	var rng interfaces.DateRange
	if v := c.Query("start_date"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
			return rng, false
		}
		rng.From = &from
	}
	if v := c.Query("end_date"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
			return rng, false
		}
		rng.To = &to
	}
	return rng, true
}

func (h *ReportHandler) PopularItems(c *gin.Context) {
	rng, ok := parseDateRange(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := h.svc.PopularItems(c.Request.Context(), limit, rng)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, items)
}

func (h *ReportHandler) PaymentMethods(c *gin.Context) {
	rng, ok := parseDateRange(c)
	if !ok {
		return
	}

	reports, err := h.svc.PaymentMethods(c.Request.Context(), rng)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, reports)
}

func (h *ReportHandler) CustomerAnalytics(c *gin.Context) {
	analytics, err := h.svc.CustomerAnalytics(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, analytics)
}

func (h *ReportHandler) TableUtilization(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	tables, err := h.svc.TableUtilization(c.Request.Context(), date)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, tables)
}
