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
)

type CartHandler struct {
	carts *cart.Store
	menus service.MenuService
}

func NewCartHandler(carts *cart.Store, menus service.MenuService) *CartHandler {
	return &CartHandler{carts: carts, menus: menus}
}

// Get returns the session cart, rehydrating it from storage.
func (h *CartHandler) Get(c *gin.Context) {
	sess, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not load cart"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}

// Add resolves the menu item and merges the quantity into the cart.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if !bindAndValidate(c, &req) {
		return
	}

	itemID, err := uuid.Parse(req.MenuItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	item, err := h.menus.Item(c.Request.Context(), itemID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	sess, err := h.carts.AddToCart(c.Request.Context(), middleware.GetSessionID(c), *item, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrNotOrderable) {
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not update cart"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}

// UpdateQuantity replaces the line quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	var req dto.UpdateQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess, err := h.carts.UpdateQuantity(c.Request.Context(), middleware.GetSessionID(c), itemID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not update cart"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}

func (h *CartHandler) Remove(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	sess, err := h.carts.RemoveFromCart(c.Request.Context(), middleware.GetSessionID(c), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not update cart"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}

func (h *CartHandler) Clear(c *gin.Context) {
	sess, err := h.carts.ClearCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not update cart"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}

// SetTier switches the session pricing tier and reprices every line.
func (h *CartHandler) SetTier(c *gin.Context) {
	var req dto.SetTierRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess, err := h.carts.SetTier(c.Request.Context(), middleware.GetSessionID(c), model.PricingTier(req.Tier))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not update cart"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}
