package repository

import (
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

// ProjectRepository defines persistence operations for portfolio projects.
type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	List() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
}

// ProjectRepositoryImpl provides methods to interact with the Project model in the database.
type ProjectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepositoryImpl instance with the provided GORM database connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepositoryImpl {
	return &ProjectRepositoryImpl{db: db}
}

// Create inserts a new Project into the database.
func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a Project by its ID from the database.
func (r *ProjectRepositoryImpl) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	return &project, err
}

// List retrieves all Projects from the database.
func (r *ProjectRepositoryImpl) List() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("id").Find(&projects).Error
	return projects, err
}

// Update saves an existing Project back to the database.
func (r *ProjectRepositoryImpl) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a Project by its ID from the database.
func (r *ProjectRepositoryImpl) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
