package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/service"
)

type LedgerHandler struct {
	ledgers service.LedgerService
}

func NewLedgerHandler(ledgers service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgers: ledgers}
}

// Customer returns the running customer ledger with a labeled balance.
func (h *LedgerHandler) Customer(c *gin.Context) {
	var q dto.LedgerQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	resp, err := h.ledgers.Customer(c.Request.Context(), middleware.GetToken(c), q.Phone)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Employee returns the month-scoped employee ledger.
func (h *LedgerHandler) Employee(c *gin.Context) {
	var q dto.LedgerQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	resp, err := h.ledgers.Employee(c.Request.Context(), middleware.GetToken(c), q.Phone, q.Month, q.Year)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Settle records a payment against a ledger and returns the updated view.
func (h *LedgerHandler) Settle(c *gin.Context) {
	var req dto.SettlementRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.ledgers.Settle(c.Request.Context(), middleware.GetToken(c), req)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
