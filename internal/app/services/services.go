// Package services orchestrates validation, credential hashing and the
// store layer behind the use-cases the HTTP surface calls.
package services

import (
	"context"

	"github.com/santiv/proyecta/internal/app/models"
)

// AccountService exposes account registration and profile use-cases
type AccountService interface {
	RegisterStudent(ctx context.Context, email, password, code string) (int64, error)
	RegisterCoordinator(ctx context.Context, email, password, staffCode string) (int64, error)
	UpdateProfile(ctx context.Context, email, phone, name, address, gender string) error
	GetProfile(ctx context.Context, email string) (*models.Account, models.Role, error)
}

// ProjectService exposes project creation and assignment use-cases
type ProjectService interface {
	CreateProject(ctx context.Context, name, description string) (int64, error)
	AssignProject(ctx context.Context, email string, projectID int64) error
	GetAssignedProject(ctx context.Context, email string) (*models.Project, error)
}

// AuthService exposes credential verification and role resolution
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (models.Role, *models.Account, error)
}
