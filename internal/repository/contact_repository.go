package repository

import (
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
)

// ContactRepository defines persistence operations for contact messages.
// Messages are append-only; there is no update or delete.
type ContactRepository interface {
	Create(message *models.ContactMessage) error
	List() ([]models.ContactMessage, error)
}

// ContactRepositoryImpl provides methods to interact with the ContactMessage model in the database.
type ContactRepositoryImpl struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepositoryImpl instance with the provided GORM database connection.
func NewContactRepository(db *gorm.DB) *ContactRepositoryImpl {
	return &ContactRepositoryImpl{db: db}
}

// Create inserts a new ContactMessage into the database.
func (r *ContactRepositoryImpl) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// List retrieves all ContactMessages in insertion order.
func (r *ContactRepositoryImpl) List() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("id").Find(&messages).Error
	return messages, err
}
