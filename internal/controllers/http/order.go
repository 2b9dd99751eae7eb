package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jennaaaaaaaaa/node-lv5/internal/apperr"
	"github.com/jennaaaaaaaaa/node-lv5/internal/domain"
)

func (h *Handler) PlaceOrder(c *gin.Context) {
	actor, _ := currentActor(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.ErrValidation)
		return
	}

	order, err := h.orders.Place(c.Request.Context(), actor.ID, req.MenuID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The order has been placed.", "data": order})
}

func (h *Handler) ListCustomerOrders(c *gin.Context) {
	actor, _ := currentActor(c)

	orders, err := h.orders.ListForCustomer(c.Request.Context(), actor.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *Handler) ListAllOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := paramID(c, "orderId")
	if err != nil {
		writeError(c, err)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.ErrValidation)
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The order has been updated."})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, err := paramID(c, "orderId")
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "The order has been deleted."})
}
