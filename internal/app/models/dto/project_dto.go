package dto

// CreateProjectRequest carries the fields of a new project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required" example:"Telemetry platform"`
	Description string `json:"description" binding:"required" example:"Sensor data ingestion and dashboards"`
}

// CreateProjectResponse returns the generated project id
type CreateProjectResponse struct {
	ProjectID int64 `json:"projectId" example:"1"`
}

// AssignProjectRequest links a project to a student by email
type AssignProjectRequest struct {
	ProjectID int64 `json:"projectId" binding:"required" example:"1"`
}

// ProjectResponse returns a project's public fields
type ProjectResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
