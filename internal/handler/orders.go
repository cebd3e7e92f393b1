package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/cart"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/service"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Checkout places the session cart as an order.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("cart is empty"))
		case errors.Is(err, service.ErrScheduleRequired):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("pre-orders require a scheduled time"))
		default:
			respondUpstreamError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Lookup returns a customer's orders by phone number.
func (h *OrderHandler) Lookup(c *gin.Context) {
	var q dto.OrderLookupQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	orders, err := h.orders.LookupByPhone(c.Request.Context(), q.Phone)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// AdminPlace creates an order on behalf of a walk-in or staff member.
func (h *OrderHandler) AdminPlace(c *gin.Context) {
	var req dto.AdminOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.orders.AdminPlace(c.Request.Context(), middleware.GetToken(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduleRequired):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("pre-orders require a scheduled time"))
		case errors.Is(err, cart.ErrNotOrderable):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			respondUpstreamError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// AdminList returns orders filtered by channel, status and date.
func (h *OrderHandler) AdminList(c *gin.Context) {
	filter := upstream.OrderFilter{
		Channel: c.Query("channel"),
		Status:  model.OrderStatus(c.Query("status")),
		Date:    c.Query("date"),
	}

	orders, err := h.orders.AdminList(c.Request.Context(), middleware.GetToken(c), filter)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Advance moves the order one step along the status flow.
func (h *OrderHandler) Advance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}

	var req dto.AdvanceStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	order, err := h.orders.Advance(c.Request.Context(), middleware.GetToken(c), id, req.ReceiptEmail)
	if err != nil {
		if errors.Is(err, service.ErrNoTransition) {
			c.JSON(http.StatusConflict, apierror.New("order is in a terminal state"))
			return
		}
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Cancel rejects a pending order; anything past pending is locked in.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}

	order, err := h.orders.Cancel(c.Request.Context(), middleware.GetToken(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotCancellable) {
			c.JSON(http.StatusConflict, apierror.New("order can no longer be cancelled"))
			return
		}
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
