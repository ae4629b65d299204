package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/services"
)

const InvalidProjectIDError = "invalid project id"
const ProjectNotFoundError = "Project not found"

// ProjectHandler defines handlers for managing portfolio projects.
type ProjectHandler struct {
	Service *services.ProjectService
	Metrics *metrics.Collector
}

// NewProjectHandler creates a new ProjectHandler with the given ProjectService.
func NewProjectHandler(service *services.ProjectService, collector *metrics.Collector) *ProjectHandler {
	return &ProjectHandler{Service: service, Metrics: collector}
}

// ProjectForm is the request body for a full project update.
type ProjectForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// CreateProject handles POST /projects/ to create a project with an image upload.
// @Summary Create a new project
// @Description Creates a portfolio project from multipart form data with a PNG or JPEG image
// @Tags projects
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Project title"
// @Param description formData string true "Project description"
// @Param image formData file true "Cover image (PNG or JPEG)"
// @Success 201 {object} models.Project "Project successfully created"
// @Failure 400 {object} map[string]interface{} "Invalid image format"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/ [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	title := c.FormValue("title")
	description := c.FormValue("description")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Printf("Failed to read image file: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "failed to read image file: " + err.Error(),
		})
	}
	log.Printf("Processing image upload: %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

	project, err := h.Service.CreateProject(title, description, fileHeader, c.BaseURL())
	if err != nil {
		if errors.Is(err, services.ErrInvalidImageType) {
			log.Printf("Rejected upload with content type %q", fileHeader.Header.Get("Content-Type"))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "Invalid image format",
			})
		}
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	if h.Metrics != nil {
		h.Metrics.ObserveUpload(fileHeader.Size)
	}
	log.Printf("Successfully created project: ID=%d, Title=%s", project.ID, project.Title)
	return c.Status(fiber.StatusCreated).JSON(project)
}

// ListProjects handles GET /projects/ to retrieve all projects.
// @Summary List all projects
// @Description Gets all portfolio projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project "List of all projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/ [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.Service.ListProjects()
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	log.Printf("Successfully listed %d projects", len(projects))
	return c.JSON(projects)
}

// GetProject handles GET /projects/:id to retrieve a single project.
// @Summary Get a project by ID
// @Description Get details of a specific portfolio project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project found"
// @Failure 400 {object} map[string]interface{} "Invalid project id"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidProjectIDError,
		})
	}

	project, err := h.Service.GetProject(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Project not found: ID=%d", projectID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		}
		log.Printf("Error fetching project: ID=%d, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	return c.JSON(project)
}

// UpdateProject handles PUT /projects/:id to overwrite all project fields.
// @Summary Update a project
// @Description Full overwrite of title, description and image URL (admin only)
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param project body ProjectForm true "Project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 401 {object} map[string]interface{} "Invalid authentication"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidProjectIDError,
		})
	}

	var form ProjectForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing project data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format",
		})
	}

	project, err := h.Service.UpdateProject(projectID, form.Title, form.Description, form.ImageURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Project not found for update: ID=%d", projectID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		}
		log.Printf("Error updating project: ID=%d, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Successfully updated project: ID=%d, Title=%s", projectID, project.Title)
	return c.JSON(project)
}

// DeleteProject handles DELETE /projects/:id to remove a project.
// @Summary Delete a project
// @Description Removes the project row permanently; the stored image file is kept (admin only)
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid project id"
// @Failure 401 {object} map[string]interface{} "Invalid authentication"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	projectID, err := parseProjectID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": InvalidProjectIDError,
		})
	}

	if err := h.Service.DeleteProject(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Project not found for delete: ID=%d", projectID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": true, "message": ProjectNotFoundError,
			})
		}
		log.Printf("Error deleting project: ID=%d, Error=%v", projectID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Successfully deleted project: ID=%d", projectID)
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}

func parseProjectID(c *fiber.Ctx) (uint, error) {
	idStr := c.Params("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		log.Printf("Invalid project id: %s - Error: %v", idStr, err)
		return 0, err
	}
	return uint(id), nil
}
