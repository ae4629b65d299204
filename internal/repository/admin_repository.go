package repository

import (
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByUsername(username string) (*models.Admin, error)
	Count() (int64, error)
}

// AdminRepositoryImpl provides methods to interact with the Admin model in the database.
type AdminRepositoryImpl struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepositoryImpl instance with the provided GORM database connection.
func NewAdminRepository(db *gorm.DB) *AdminRepositoryImpl {
	return &AdminRepositoryImpl{db: db}
}

// Create inserts a new Admin into the database.
func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// GetByUsername retrieves an Admin by its unique username.
func (r *AdminRepositoryImpl) GetByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "username = ?", username).Error
	return &admin, err
}

// Count returns the number of admin accounts.
func (r *AdminRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}
