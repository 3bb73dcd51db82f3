package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/app/repositories"
	"github.com/santiv/proyecta/internal/pkg/validation"
)

// projectService implements ProjectService
type projectService struct {
	projectRepo *repositories.ProjectRepository
	logger      zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo *repositories.ProjectRepository, logger zerolog.Logger) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProject validates and persists a new project
func (s *projectService) CreateProject(ctx context.Context, name, description string) (int64, error) {
	if err := validation.ValidateProject(name, description); err != nil {
		s.logger.Warn().Err(err).Str("name", name).Msg("Project creation rejected by validation")
		return 0, err
	}

	return s.projectRepo.CreateProject(ctx, name, description)
}

// AssignProject links a project to the student identified by email. The
// project must exist before the student's reference is updated.
func (s *projectService) AssignProject(ctx context.Context, email string, projectID int64) error {
	if _, err := s.projectRepo.GetProjectByID(ctx, projectID); err != nil {
		return err
	}

	return s.projectRepo.AssignProject(ctx, email, projectID)
}

// GetAssignedProject fetches the project currently assigned to the student,
// or ErrNoProjectAssigned when there is none.
func (s *projectService) GetAssignedProject(ctx context.Context, email string) (*models.Project, error) {
	return s.projectRepo.GetAssignedProject(ctx, email)
}
