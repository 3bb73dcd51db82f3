package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/db"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
	"github.com/santiv/proyecta/internal/pkg/dberrors"
	"github.com/santiv/proyecta/internal/pkg/logger"
)

// ProjectRepository handles project and assignment database operations
type ProjectRepository struct {
	db db.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(pool db.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AssignProject sets the student's project reference, resolving the student
// through the account email. Zero matched rows means no such student.
func (r *ProjectRepository) AssignProject(ctx context.Context, email string, projectID int64) error {
	sql, args, err := r.sb.Update("students").
		Set("project_id", projectID).
		Where("account_id = (SELECT id FROM accounts WHERE email = ?)", email).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build assign project query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, "students_project_id_fkey") {
			return apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Str("email", email).Int64("projectID", projectID).Msg("Error assigning project")
		return fmt.Errorf("error assigning project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		logger.Warn().Str("email", email).Msg("Assignment target student not found")
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Str("email", email).Int64("projectID", projectID).Msg("Project assigned")
	return nil
}

// GetAssignedProject fetches the project linked to the student identified by
// email. Absence of a link (or of the account) is ErrNoProjectAssigned, not
// a failure.
func (r *ProjectRepository) GetAssignedProject(ctx context.Context, email string) (*models.Project, error) {
	sql, args, err := r.sb.Select("p.id", "p.name", "p.description").
		From("projects p").
		Join("students s ON s.project_id = p.id").
		Join("accounts a ON a.id = s.account_id").
		Where(squirrel.Eq{"a.email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build assigned project query: %w", err)
	}

	project := &models.Project{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&project.ID, &project.Name, &project.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoProjectAssigned
		}
		logger.Error().Err(err).Str("email", email).Msg("Error retrieving assigned project")
		return nil, fmt.Errorf("error retrieving assigned project: %w", err)
	}

	return project, nil
}

// CreateProject inserts a new project and returns its generated id
func (r *ProjectRepository) CreateProject(ctx context.Context, name, description string) (int64, error) {
	sql, args, err := r.sb.Insert("projects").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create project query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error creating project")
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	logger.Info().Int64("projectID", id).Str("name", name).Msg("Project created")
	return id, nil
}

// GetProjectByID retrieves a project by its id
func (r *ProjectRepository) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select("id", "name", "description").
		From("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project := &models.Project{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&project.ID, &project.Name, &project.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	return project, nil
}

// ListProjects is reserved for a future catalog view; it fails loudly
// instead of returning an empty list.
func (r *ProjectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	return nil, fmt.Errorf("list projects: %w", apperrors.ErrNotImplemented)
}
