package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQueryAndValidate is the query-string variant.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondUpstreamError maps the upstream error taxonomy onto HTTP responses:
// 429 immediately with no retry hint, 401 with a login redirect, everything
// network-shaped as a retryable 502.
func respondUpstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upstream.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, apierror.New("the service is receiving too many requests, please wait a moment"))
	case errors.Is(err, upstream.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, apierror.NewRedirect("session expired, please sign in again", middleware.AdminLoginRoute))
	case errors.Is(err, upstream.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New("not found"))
	case errors.Is(err, upstream.ErrCircuitOpen):
		c.JSON(http.StatusServiceUnavailable, apierror.NewRetryable("the café service is temporarily unavailable"))
	default:
		var se *upstream.StatusError
		if errors.As(err, &se) && se.Code < 500 {
			c.JSON(http.StatusBadRequest, apierror.New(se.Detail))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.NewRetryable("could not reach the café service, please try again"))
	}
}
