package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/app/repositories"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
	"github.com/santiv/proyecta/internal/pkg/auth"
	"github.com/santiv/proyecta/internal/pkg/validation"
)

// authService implements AuthService
type authService struct {
	accountRepo *repositories.AccountRepository
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo *repositories.AccountRepository, logger zerolog.Logger) AuthService {
	return &authService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// Authenticate looks up the account, verifies the credential against the
// stored digest and resolves the account's role. A missing account and a
// digest mismatch are indistinguishable to the caller.
func (s *authService) Authenticate(ctx context.Context, email, password string) (models.Role, *models.Account, error) {
	if err := validation.ValidateCredentials(email, password); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	acc, err := s.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		// Uniform rejection: no role or existence information leaks
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(acc.Password, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	role, err := resolveRole(ctx, s.accountRepo, acc.ID, s.logger)
	if err != nil {
		return "", nil, err
	}

	return role, acc, nil
}

// resolveRole determines the role of an account by probing the student and
// coordinator tables. An account matching both tables is an integrity
// anomaly: it is logged and rejected, never silently resolved to one role.
func resolveRole(ctx context.Context, repo *repositories.AccountRepository, accountID int64, logger zerolog.Logger) (models.Role, error) {
	isStudent, err := repo.HasStudentRecord(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("error resolving role: %w", err)
	}

	isCoordinator, err := repo.HasCoordinatorRecord(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("error resolving role: %w", err)
	}

	switch {
	case isStudent && isCoordinator:
		logger.Error().Int64("accountID", accountID).Msg("Integrity anomaly: account matches both role tables")
		return "", apperrors.ErrRoleConflict
	case isStudent:
		return models.RoleStudent, nil
	case isCoordinator:
		return models.RoleCoordinator, nil
	default:
		logger.Warn().Int64("accountID", accountID).Msg("Account has no role record")
		return "", apperrors.ErrUnknownRole
	}
}
