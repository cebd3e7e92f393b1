package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/cart"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

type AuthHandler struct {
	api   *upstream.Client
	carts *cart.Store
}

func NewAuthHandler(api *upstream.Client, carts *cart.Store) *AuthHandler {
	return &AuthHandler{api: api, carts: carts}
}

// AdminLogin authenticates staff and returns the bearer token for the admin
// route group.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	auth, err := h.api.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, auth)
}

// GenerateOTP asks the upstream to send a one-time code.
func (h *AuthHandler) GenerateOTP(c *gin.Context) {
	var req dto.OTPGenerateRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.api.GenerateOTP(c.Request.Context(), req.Phone); err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// VerifyOTP exchanges the code for a token and binds the user to the session.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.OTPVerifyRequest
	if !bindAndValidate(c, &req) {
		return
	}

	auth, err := h.api.VerifyOTP(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.bindSession(c, auth)
}

// CustomerLogin authenticates by phone + password and binds the user to the
// session.
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req dto.CustomerLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	auth, err := h.api.CustomerLogin(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.bindSession(c, auth)
}

// Register creates a self-service account and signs the caller in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	auth, err := h.api.RegisterCustomer(c.Request.Context(), req.Name, req.Phone, req.Email, req.Password)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.bindSession(c, auth)
}

// Logout drops the user and token from the session, legacy key included.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, err := h.carts.Logout(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not clear session"))
		return
	}
	c.JSON(http.StatusOK, dto.NewCartResponse(sess))
}

// Profile serves the signed-in customer's profile from the upstream, falling
// back to the locally stored customer data when the token is gone.
func (h *AuthHandler) Profile(c *gin.Context) {
	sid := middleware.GetSessionID(c)
	sess, err := h.carts.Get(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not load session"))
		return
	}

	if sess.Token == "" {
		local, err := h.carts.CustomerProfile(c.Request.Context(), sid)
		if err != nil || local == nil {
			c.JSON(http.StatusUnauthorized, apierror.NewRedirect("not signed in", middleware.HomeRoute))
			return
		}
		c.JSON(http.StatusOK, local)
		return
	}

	profile, err := h.api.GetProfile(c.Request.Context(), sess.Token)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			// An expired token invalidates the whole session.
			_, _ = h.carts.Logout(c.Request.Context(), sid)
		}
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MyOrders lists the signed-in customer's orders.
func (h *AuthHandler) MyOrders(c *gin.Context) {
	sess, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not load session"))
		return
	}
	if sess.Token == "" {
		c.JSON(http.StatusUnauthorized, apierror.NewRedirect("not signed in", middleware.HomeRoute))
		return
	}

	orders, err := h.api.CustomerOrders(c.Request.Context(), sess.Token)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ChangePassword rotates the signed-in customer's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess, err := h.carts.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not load session"))
		return
	}
	if sess.Token == "" {
		c.JSON(http.StatusUnauthorized, apierror.NewRedirect("not signed in", middleware.HomeRoute))
		return
	}

	if err := h.api.ChangePassword(c.Request.Context(), sess.Token, req.CurrentPassword, req.NewPassword); err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "changed"})
}

// bindSession persists the authenticated user into the session cart and
// replies with the token plus the refreshed cart view.
func (h *AuthHandler) bindSession(c *gin.Context, auth *upstream.AuthToken) {
	user := cart.User{
		ID:    auth.User.ID,
		Name:  auth.User.Name,
		Phone: auth.User.Phone,
		Role:  auth.User.Role,
	}
	sess, err := h.carts.Login(c.Request.Context(), middleware.GetSessionID(c), user, auth.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.NewRetryable("could not persist session"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": auth.Token, "cart": dto.NewCartResponse(sess)})
}
