package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/repositories"
	"github.com/santiv/proyecta/internal/app/services"
	"github.com/santiv/proyecta/internal/config"
	"github.com/santiv/proyecta/internal/db"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
)

// CreateDefaultData provisions the default coordinator account so a fresh
// install has someone who can log in and register students. An already
// existing coordinator is not an error.
func CreateDefaultData(ctx context.Context, pool db.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.CoordinatorEmail == "" {
		lgr.Debug().Msg("No seed coordinator configured, skipping")
		return nil
	}

	accountRepo := repositories.NewAccountRepository(pool)
	accountService := services.NewAccountService(accountRepo, lgr)

	_, err := accountService.RegisterCoordinator(ctx,
		cfg.Seed.CoordinatorEmail,
		cfg.Seed.CoordinatorPassword,
		cfg.Seed.CoordinatorStaffCode,
	)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEmailAlreadyExists, apperrors.ErrStaffCodeExists) {
			lgr.Debug().Str("email", cfg.Seed.CoordinatorEmail).Msg("Seed coordinator already present")
			return nil
		}
		lgr.Error().Err(err).Msg("Failed to create seed coordinator")
		return errors.Join(errors.New("seed coordinator creation failed"), err)
	}

	lgr.Info().Str("email", cfg.Seed.CoordinatorEmail).Msg("Seed coordinator created")
	return nil
}
