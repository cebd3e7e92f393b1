package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

// UserHandler passes the admin user-management screens through to the
// upstream.
type UserHandler struct {
	api *upstream.Client
}

func NewUserHandler(api *upstream.Client) *UserHandler {
	return &UserHandler{api: api}
}

// List returns all users with running ledger totals, optionally filtered by
// role.
func (h *UserHandler) List(c *gin.Context) {
	token := middleware.GetToken(c)

	var (
		users []upstream.UserWithTotals
		err   error
	)
	if role := c.Query("role"); role != "" {
		users, err = h.api.UsersByRole(c.Request.Context(), token, role)
	} else {
		users, err = h.api.ListUsers(c.Request.Context(), token)
	}
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid user id"))
		return
	}

	var user upstream.UserWithTotals
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return
	}
	user.ID = id

	updated, err := h.api.UpdateUser(c.Request.Context(), middleware.GetToken(c), user)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid user id"))
		return
	}

	if err := h.api.DeleteUser(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Orders returns one user's orders together with their ledger summary.
func (h *UserHandler) Orders(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid user id"))
		return
	}

	out, err := h.api.UserOrders(c.Request.Context(), middleware.GetToken(c), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
