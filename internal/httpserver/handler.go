package httpserver

import (
	"errors"
	"net/http"

	"goshop/internal/config"
	"goshop/internal/order"
	"goshop/internal/product"
	"goshop/internal/user"

	"github.com/gin-gonic/gin"
)

type handler struct {
	cfg      *config.Config
	products product.Service
	users    user.Service
	orders   order.Service
}

func newHandler(deps Deps) *handler {
	return &handler{
		cfg:      deps.Config,
		products: deps.Products,
		users:    deps.Users,
		orders:   deps.Orders,
	}
}

// writeError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic body; details stay in the logs.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyAddress),
		errors.Is(err, order.ErrEmptyItems),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrOrderFinal),
		errors.Is(err, order.ErrTransitionRefused),
		errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrImageRequired),
		errors.Is(err, user.ErrMissingFields),
		errors.Is(err, user.ErrEmailExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, order.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrPaymentFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
