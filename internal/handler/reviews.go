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
	"github.com/ACK1998/cafe-tamarind-sub001/internal/service"
)

type ReviewHandler struct {
	reviews service.ReviewService
	carts   *cart.Store
}

func NewReviewHandler(reviews service.ReviewService, carts *cart.Store) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, carts: carts}
}

// Submit records per-item food/service ratings for an order. Submissions
// where every rating is zero never reach the upstream.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req dto.SubmitReviewRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not load session"))
		return
	}

	if err := h.reviews.Submit(c.Request.Context(), sess.Token, req); err != nil {
		if errors.Is(err, service.ErrNoRatings) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("at least one non-zero rating is required"))
			return
		}
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "submitted"})
}

// Eligibility reports whether the order can still be reviewed.
func (h *ReviewHandler) Eligibility(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}

	eligible, err := h.reviews.Eligibility(c.Request.Context(), orderID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"eligible": eligible})
}

// Existing returns prior reviews keyed by (menu item, review type) so the
// client can pre-populate the update flow.
func (h *ReviewHandler) Existing(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}

	reviews, err := h.reviews.Existing(c.Request.Context(), orderID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// ForMenuItem lists the public reviews of one menu item.
func (h *ReviewHandler) ForMenuItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	reviews, err := h.reviews.ForMenuItem(c.Request.Context(), itemID)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// AdminList returns all reviews for the management screens.
func (h *ReviewHandler) AdminList(c *gin.Context) {
	reviews, err := h.reviews.AdminList(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
