package httpserver

import (
	"net/http"
	"strconv"

	"goshop/internal/middleware"
	"goshop/internal/order"

	"github.com/gin-gonic/gin"
)

func (h *handler) checkout(c *gin.Context) {
	var draft order.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orders.Checkout(c.Request.Context(), middleware.UserID(c), draft)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "order created",
		"order_id":    result.OrderID,
		"payment_url": result.PaymentURL,
	})
}

func (h *handler) myOrders(c *gin.Context) {
	orders, err := h.orders.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *handler) allOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *handler) updateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var input struct {
		Status order.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.orders.UpdateStatus(c.Request.Context(), uint(id), input.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "data": updated})
}
