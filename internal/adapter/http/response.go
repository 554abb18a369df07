package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/restaurant/internal/app/auth"
	"github.com/YelzhanWeb/restaurant/internal/domain"
)

// envelope is the uniform response shape: {success, data, error, message}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Error: message})
}

// respondDomainError maps service-layer errors onto HTTP statuses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func respondDomainError(c *gin.Context, err error) {
	var unavailable *domain.ItemUnavailableError
	var transition *domain.InvalidTransitionError

	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		respondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, domain.ErrPhoneTaken),
		errors.Is(err, domain.ErrTableNumberTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrCategoryHasItems),
		errors.Is(err, domain.ErrCustomerHasActiveOrders),
		errors.Is(err, domain.ErrTableHasActiveOrders):
		respondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidOrderType),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPaymentStatus),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.As(err, &unavailable),
		errors.As(err, &transition):
		respondError(c, http.StatusBadRequest, err.Error())

	default:
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
