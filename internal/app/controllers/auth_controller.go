package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/models/dto"
	"github.com/santiv/proyecta/internal/app/services"
	"github.com/santiv/proyecta/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, jwtService *auth.JWTService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login authenticates an account and issues an access token carrying the
// resolved role. Rejections are uniform regardless of cause.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	role, account, err := c.authService.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Warn().Str("email", req.Email).Msg("Login rejected")
		writeError(ctx, err)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(account, role)
	if err != nil {
		c.logger.Error().Err(err).Msg("Token generation failed")
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        string(role),
	}))
}
