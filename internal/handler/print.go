package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/receipt"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/worker"
)

// PrintHandler serves self-contained HTML print documents and lets staff
// re-fire print jobs for orders whose automatic print failed.
type PrintHandler struct {
	api        *upstream.Client
	dispatcher *worker.Dispatcher
	cafeName   string
}

func NewPrintHandler(api *upstream.Client, dispatcher *worker.Dispatcher, cafeName string) *PrintHandler {
	return &PrintHandler{api: api, dispatcher: dispatcher, cafeName: cafeName}
}

// KOT renders the kitchen order ticket: items and quantities, no prices.
func (h *PrintHandler) KOT(c *gin.Context) {
	order, ok := h.order(c)
	if !ok {
		return
	}

	doc, err := receipt.RenderKOT(h.cafeName, *order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not render ticket"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// Bill renders the customer bill with per-line and grand totals.
func (h *PrintHandler) Bill(c *gin.Context) {
	order, ok := h.order(c)
	if !ok {
		return
	}

	doc, err := receipt.RenderBill(h.cafeName, *order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not render bill"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// Combined renders one bill across all of a customer's orders, with
// same-named items at the same unit price merged into one line. Both the
// items total and the sum of order totals are shown; they are allowed to
// disagree when orders carry adjustments.
func (h *PrintHandler) Combined(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, apierror.New("phone is required"))
		return
	}

	orders, err := h.api.OrdersByPhone(c.Request.Context(), phone)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, apierror.New("no orders for that phone"))
		return
	}

	billable := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status != model.StatusCancelled {
			billable = append(billable, o)
		}
	}
	if len(billable) == 0 {
		c.JSON(http.StatusNotFound, apierror.New("no billable orders for that phone"))
		return
	}

	doc, err := receipt.RenderCombinedBill(h.cafeName, billable[0].CustomerName, billable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not render bill"))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// Reprint re-enqueues a KOT or bill print job for the order.
func (h *PrintHandler) Reprint(c *gin.Context) {
	order, ok := h.order(c)
	if !ok {
		return
	}

	kind := c.Query("kind")
	if kind != worker.PrintKOT && kind != worker.PrintBill {
		c.JSON(http.StatusBadRequest, apierror.New("kind must be kot or bill"))
		return
	}

	payload := worker.PrintJobPayload{Kind: kind, Order: *order, Email: c.Query("email")}
	if err := h.dispatcher.EnqueuePrint(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not enqueue print job"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

func (h *PrintHandler) order(c *gin.Context) (*model.Order, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return nil, false
	}

	order, err := h.api.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return nil, false
	}
	return order, true
}
