package models

// Project defines the project model based on the 'projects' table.
// Projects are immutable once created; students reference them through
// StudentRecord.ProjectID.
type Project struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
