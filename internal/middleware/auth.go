package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
)

const (
	ClaimsKey = "claims"
	TokenKey  = "token"

	// Routes the client is told to navigate to on auth failures.
	AdminLoginRoute = "/admin/login"
	HomeRoute       = "/"
)

// JWTClaims are the custom claims embedded in upstream-issued tokens.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AdminAuth guards the admin route group. An invalid or missing token yields
// 401 with a redirect hint to the admin login; a valid token without the
// admin role yields 403 with a redirect to the public home.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.NewRedirect("authentication required", AdminLoginRoute))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apierror.NewRedirect("invalid or expired token", AdminLoginRoute))
			return
		}

		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.NewRedirect("insufficient permissions", HomeRoute))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(TokenKey, tokenStr)
		c.Next()
	}
}

// GetClaims retrieves typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// GetToken retrieves the raw bearer token for upstream pass-through.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
