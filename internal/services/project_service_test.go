package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/storage"
)

func newImageFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func newProjectService(t *testing.T, db *gorm.DB) (*ProjectService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	return NewProjectService(repository.NewProjectRepository(db), store), dir
}

func TestCreateProject_RejectsInvalidContentType(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newProjectService(t, db)

	fh := newImageFileHeader(t, "notes.txt", "text/plain", []byte("not an image"))
	_, err := svc.CreateProject("Title", "Desc", fh, "http://localhost:8080")
	assert.ErrorIs(t, err, ErrInvalidImageType)

	// No row and no file were written.
	var count int64
	require.NoError(t, db.Model(&models.Project{}).Count(&count).Error)
	assert.Zero(t, count)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateProject_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newProjectService(t, db)

	content := []byte("fake png bytes")
	fh := newImageFileHeader(t, "cover.png", "image/png", content)
	created, err := svc.CreateProject("My Site", "A portfolio site", fh, "http://localhost:8080/")
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "My Site", created.Title)
	assert.Equal(t, "A portfolio site", created.Description)
	assert.Equal(t, "http://localhost:8080/uploads/cover.png", created.ImageURL)

	stored, err := os.ReadFile(filepath.Join(dir, "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	got, err := svc.GetProject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.ImageURL, got.ImageURL)
}

func TestCreateProject_SameFilenameOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newProjectService(t, db)

	first := newImageFileHeader(t, "cover.jpg", "image/jpeg", []byte("first"))
	_, err := svc.CreateProject("One", "first upload", first, "http://localhost")
	require.NoError(t, err)

	second := newImageFileHeader(t, "cover.jpg", "image/jpeg", []byte("second"))
	_, err = svc.CreateProject("Two", "second upload", second, "http://localhost")
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, "cover.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), stored)
}

func TestUpdateProject_FullOverwrite(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProjectService(t, db)

	fh := newImageFileHeader(t, "a.png", "image/png", []byte("img"))
	created, err := svc.CreateProject("Old", "old desc", fh, "http://localhost")
	require.NoError(t, err)

	updated, err := svc.UpdateProject(created.ID, "New", "new desc", "http://example.com/uploads/b.png")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "new desc", updated.Description)
	assert.Equal(t, "http://example.com/uploads/b.png", updated.ImageURL)

	got, err := svc.GetProject(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
}

func TestUpdateProject_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newProjectService(t, db)

	_, err := svc.UpdateProject(9999, "x", "y", "z")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProject(t *testing.T) {
	db := newTestDB(t)
	svc, dir := newProjectService(t, db)

	assert.ErrorIs(t, svc.DeleteProject(9999), gorm.ErrRecordNotFound)

	fh := newImageFileHeader(t, "keep.png", "image/png", []byte("img"))
	created, err := svc.CreateProject("Doomed", "to be deleted", fh, "http://localhost")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(created.ID))

	projects, err := svc.ListProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)

	// The stored file is intentionally kept.
	_, err = os.Stat(filepath.Join(dir, "keep.png"))
	assert.NoError(t, err)
}
