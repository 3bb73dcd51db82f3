package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/models/dto"
	"github.com/santiv/proyecta/internal/app/services"
	"github.com/santiv/proyecta/internal/middleware"
)

// AccountController handles registration and profile operations
type AccountController struct {
	accountService services.AccountService
	logger         zerolog.Logger
}

// NewAccountController creates a new AccountController
func NewAccountController(accountService services.AccountService, logger zerolog.Logger) *AccountController {
	return &AccountController{
		accountService: accountService,
		logger:         logger,
	}
}

// RegisterStudent creates a student account; coordinator only.
func (c *AccountController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID, err := c.accountService.RegisterStudent(ctx.Request.Context(), req.Email, req.Password, req.Code)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.RegisterStudentResponse{AccountID: accountID}))
}

// UpdateProfile applies the authenticated student's personal-data update.
func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	email := ctx.GetString(middleware.ContextEmail)
	err := c.accountService.UpdateProfile(ctx.Request.Context(), email, req.Phone, req.Name, req.Address, req.Gender)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("profile updated"))
}

// GetProfile returns the authenticated account's profile and role.
func (c *AccountController) GetProfile(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmail)

	account, role, err := c.accountService.GetProfile(ctx.Request.Context(), email)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProfileResponse{
		ID:      account.ID,
		Email:   account.Email,
		Name:    account.Name,
		Phone:   account.Phone,
		Address: account.Address,
		Role:    string(role),
	}))
}
