package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/santiv/proyecta/internal/app/models/dto"
	"github.com/santiv/proyecta/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextAccountID = "accountID"
	ContextEmail     = "email"
	ContextRole      = "role"
)

// AuthMiddleware guards routes behind JWT authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores its claims on the request
// context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "missing or malformed authorization header")))
			return
		}

		claims, err := m.jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, err.Error())))
			return
		}

		ctx.Set(ContextAccountID, claims.AccountID)
		ctx.Set(ContextEmail, claims.Email)
		ctx.Set(ContextRole, claims.Role)
		ctx.Next()
	}
}

// RoleRequired rejects requests whose token does not carry the given role.
func (m *AuthMiddleware) RoleRequired(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextRole) != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "insufficient role")))
			return
		}
		ctx.Next()
	}
}
