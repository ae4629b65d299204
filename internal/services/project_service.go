package services

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/pkg/errors"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/storage"
)

// allowedImageTypes lists the accepted upload content types.
var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// ProjectService manages portfolio projects and their uploaded cover images.
type ProjectService struct {
	Repo  *repository.ProjectRepositoryImpl
	Store storage.FileStore
}

// NewProjectService creates a new ProjectService with the given repository and file store.
func NewProjectService(repo *repository.ProjectRepositoryImpl, store storage.FileStore) *ProjectService {
	return &ProjectService{Repo: repo, Store: store}
}

// CreateProject validates the image type, stores the file under its original
// filename (last write wins) and inserts the project row. The image URL is the
// caller's base URL joined with the storage path. If the insert fails the
// stored file is left behind.
func (s *ProjectService) CreateProject(title, description string, fileHeader *multipart.FileHeader, baseURL string) (*models.Project, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, ErrInvalidImageType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not open uploaded file")
	}
	defer src.Close()

	relPath, err := s.Store.Save(context.Background(), fileHeader.Filename, src, fileHeader.Size, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	project := &models.Project{
		Title:       title,
		Description: description,
		ImageURL:    strings.TrimRight(baseURL, "/") + relPath,
	}
	if err := s.Repo.Create(project); err != nil {
		return nil, errors.Wrap(err, "failed to save project to database")
	}
	return project, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	return s.Repo.GetByID(id)
}

// ListProjects returns all projects.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.Repo.List()
}

// UpdateProject overwrites all mutable fields of an existing project.
func (s *ProjectService) UpdateProject(id uint, title, description, imageURL string) (*models.Project, error) {
	project, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	project.Title = title
	project.Description = description
	project.ImageURL = imageURL
	if err := s.Repo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes the project row. The stored image file is kept.
func (s *ProjectService) DeleteProject(id uint) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
