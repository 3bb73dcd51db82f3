package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/app/repositories"
	"github.com/santiv/proyecta/internal/pkg/auth"
	"github.com/santiv/proyecta/internal/pkg/validation"
)

// accountService implements AccountService
type accountService struct {
	accountRepo *repositories.AccountRepository
	logger      zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo *repositories.AccountRepository, logger zerolog.Logger) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// RegisterStudent validates the registration fields, hashes the credential
// and creates the account plus student record atomically.
func (s *accountService) RegisterStudent(ctx context.Context, email, password, code string) (int64, error) {
	if err := validation.ValidateStudentRegistration(email, password, code); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Student registration rejected by validation")
		return 0, err
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	acc := &models.Account{Email: email, Password: digest}
	return s.accountRepo.CreateStudentAccount(ctx, acc, code)
}

// RegisterCoordinator validates the registration fields, hashes the
// credential and creates the account plus coordinator record atomically.
func (s *accountService) RegisterCoordinator(ctx context.Context, email, password, staffCode string) (int64, error) {
	if err := validation.ValidateCoordinatorRegistration(email, password, staffCode); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Coordinator registration rejected by validation")
		return 0, err
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	acc := &models.Account{Email: email, Password: digest}
	return s.accountRepo.CreateCoordinatorAccount(ctx, acc, staffCode)
}

// UpdateProfile validates and applies a personal-data update
func (s *accountService) UpdateProfile(ctx context.Context, email, phone, name, address, gender string) error {
	if err := validation.ValidateProfileUpdate(email, phone, name, address, gender); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Profile update rejected by validation")
		return err
	}

	return s.accountRepo.UpdateStudentPersonalData(ctx, email, phone, name, address, models.Gender(gender))
}

// GetProfile fetches the account and resolves its role
func (s *accountService) GetProfile(ctx context.Context, email string) (*models.Account, models.Role, error) {
	acc, err := s.accountRepo.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	role, err := resolveRole(ctx, s.accountRepo, acc.ID, s.logger)
	if err != nil {
		return nil, "", err
	}

	return acc, role, nil
}
