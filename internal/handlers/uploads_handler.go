package handlers

import (
	"log"
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/storage"
)

// UploadsHandler serves stored upload files through the file store. It backs
// the /uploads static path when files live in object storage rather than on
// local disk.
type UploadsHandler struct {
	Store storage.FileStore
}

// NewUploadsHandler creates a new UploadsHandler over the given file store.
func NewUploadsHandler(store storage.FileStore) *UploadsHandler {
	return &UploadsHandler{Store: store}
}

// ServeFile handles GET /uploads/:filename to stream a stored file.
// @Summary Download an uploaded file
// @Description Streams an uploaded image by filename
// @Tags uploads
// @Produce octet-stream
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /uploads/{filename} [get]
func (h *UploadsHandler) ServeFile(c *fiber.Ctx) error {
	filename := c.Params("filename")
	if filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "invalid filename",
		})
	}

	rc, err := h.Store.Open(c.Context(), filename)
	if err != nil {
		log.Printf("Stored file not found: %s - Error: %v", filename, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": true, "message": "file not found",
		})
	}

	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.SendStream(rc)
}
