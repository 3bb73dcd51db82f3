package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/santiv/proyecta/internal/app/models/dto"
	"github.com/santiv/proyecta/internal/app/services"
	"github.com/santiv/proyecta/internal/middleware"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
)

// ProjectController handles project creation and assignment operations
type ProjectController struct {
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// CreateProject registers a new project; coordinator only.
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	projectID, err := c.projectService.CreateProject(ctx.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreateProjectResponse{ProjectID: projectID}))
}

// AssignProject links a project to the student named in the path;
// coordinator only.
func (c *ProjectController) AssignProject(ctx *gin.Context) {
	var req dto.AssignProjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	email := ctx.Param("email")
	if err := c.projectService.AssignProject(ctx.Request.Context(), email, req.ProjectID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("project assigned"))
}

// GetAssignedProject returns the authenticated student's assigned project.
// A student with no assignment gets an empty success payload, not an error.
func (c *ProjectController) GetAssignedProject(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmail)

	project, err := c.projectService.GetAssignedProject(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoProjectAssigned) {
			ctx.JSON(http.StatusOK, dto.NewMessageResponse("no project assigned"))
			return
		}
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ProjectResponse{
		Name:        project.Name,
		Description: project.Description,
	}))
}
