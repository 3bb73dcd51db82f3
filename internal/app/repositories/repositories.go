package repositories

import (
	"github.com/santiv/proyecta/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository *AccountRepository
	ProjectRepository *ProjectRepository
}

// NewRepositories initializes all repositories against one shared pool
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		AccountRepository: NewAccountRepository(pool),
		ProjectRepository: NewProjectRepository(pool),
	}
}
