package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type MenuHandler struct {
	svc interfaces.MenuService
}

func NewMenuHandler(svc interfaces.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newCategoryViews(categories))
}

type categoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}
	created, err := h.svc.CreateCategory(c.Request.Context(), category)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondCreated(c, newCategoryView(created))
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category := &domain.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	updated, err := h.svc.UpdateCategory(c.Request.Context(), category)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newCategoryView(updated))
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "category deleted")
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	var filter interfaces.MenuItemFilter

	if v := c.Query("category_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid category_id")
			return
		}
		filter.CategoryID = &id
	}
	filter.AvailableOnly = c.Query("available") == "true"
	filter.Search = c.Query("search")
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	filter.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.svc.ListItems(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newMenuItemViews(items))
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newMenuItemView(item))
}

type menuItemRequest struct {
	CategoryID      int     `json:"category_id" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Description     *string `json:"description"`
	Price           string  `json:"price" binding:"required"`
	ImageURL        *string `json:"image_url"`
	Ingredients     *string `json:"ingredients"`
	Allergens       *string `json:"allergens"`
	PreparationTime int     `json:"preparation_time"`
	Calories        *int    `json:"calories"`
	SortOrder       int     `json:"sort_order"`
	IsAvailable     *bool   `json:"is_available"`
	IsFeatured      bool    `json:"is_featured"`
}

func (r menuItemRequest) toDomain() (*domain.MenuItem, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil || price.IsNegative() {
		return nil, err
	}

	item := &domain.MenuItem{
		CategoryID:      r.CategoryID,
		Name:            r.Name,
		Description:     r.Description,
		Price:           price,
		ImageURL:        r.ImageURL,
		Ingredients:     r.Ingredients,
		Allergens:       r.Allergens,
		PreparationTime: r.PreparationTime,
		Calories:        r.Calories,
		SortOrder:       r.SortOrder,
		IsAvailable:     true,
		IsFeatured:      r.IsFeatured,
	}
	if r.IsAvailable != nil {
		item.IsAvailable = *r.IsAvailable
	}
	return item, nil
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := req.toDomain()
	if err != nil || item == nil {
		respondError(c, http.StatusBadRequest, "invalid price")
		return
	}
	created, err := h.svc.CreateItem(c.Request.Context(), item)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondCreated(c, newMenuItemView(created))
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item, err := req.toDomain()
	if err != nil || item == nil {
		respondError(c, http.StatusBadRequest, "invalid price")
		return
	}
	item.ID = id
	updated, err := h.svc.UpdateItem(c.Request.Context(), item)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondOK(c, newMenuItemView(updated))
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	respondMessage(c, "menu item deleted")
}
