// Package controllers handles HTTP request handling for the UI collaborator.
// Controllers bind requests, call the services and translate service errors
// into the HTTP outcome; detailed error messages are diagnostics only.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santiv/proyecta/internal/app/models/dto"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
	"github.com/santiv/proyecta/internal/pkg/validation"
)

// writeError maps a service error onto the standard error envelope.
func writeError(ctx *gin.Context, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, fieldErr.Message).WithField(fieldErr.Field)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrUnknownRole):
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "invalid credentials")))
	case errors.Is(err, apperrors.ErrRoleConflict):
		ctx.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeRoleConflict, "account role records are inconsistent")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentCodeExists),
		errors.Is(err, apperrors.ErrStaffCodeExists):
		ctx.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrNotImplemented):
		ctx.JSON(http.StatusNotImplemented,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeNotImplemented, "operation not implemented")))
	default:
		ctx.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "internal server error")))
	}
}

// bindJSON binds the request body, writing the standard envelope on failure.
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
		return false
	}
	return true
}
