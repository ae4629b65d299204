package services

import (
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

// ContactService handles contact form submissions and admin-only retrieval.
type ContactService struct {
	Repo *repository.ContactRepositoryImpl
}

// NewContactService creates a new ContactService with the given repository.
func NewContactService(repo *repository.ContactRepositoryImpl) *ContactService {
	return &ContactService{Repo: repo}
}

// SubmitMessage stores a contact message with a server-assigned timestamp.
func (s *ContactService) SubmitMessage(name, email, message string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns all contact messages in insertion order.
func (s *ContactService) ListMessages() ([]models.ContactMessage, error) {
	return s.Repo.List()
}
