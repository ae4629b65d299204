package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/services"
)

// ContactHandler defines handlers for the public contact form and the
// admin-only message listing.
type ContactHandler struct {
	Service *services.ContactService
}

// NewContactHandler creates a new ContactHandler with the given ContactService.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{Service: service}
}

// ContactForm is the request body for a contact submission.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitMessage handles POST /contact/ to store a visitor message.
// @Summary Submit a contact message
// @Description Stores a contact form submission with a server-assigned timestamp
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body ContactForm true "Contact form data"
// @Success 200 {object} map[string]interface{} "Message received"
// @Failure 400 {object} map[string]interface{} "Invalid request format"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contact/ [post]
func (h *ContactHandler) SubmitMessage(c *fiber.Ctx) error {
	var form ContactForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing contact form: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format",
		})
	}

	msg, err := h.Service.SubmitMessage(form.Name, form.Email, form.Message)
	if err != nil {
		log.Printf("Error saving contact message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Stored contact message: ID=%d, From=%s", msg.ID, msg.Email)
	return c.JSON(fiber.Map{"message": "Message received"})
}

// ListMessages handles GET /contact/ to return all messages to an admin.
// @Summary List all contact messages
// @Description Gets all contact messages in insertion order (admin only)
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]interface{} "List of contact messages"
// @Failure 401 {object} map[string]interface{} "Invalid authentication"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /contact/ [get]
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.Service.ListMessages()
	if err != nil {
		log.Printf("Error listing contact messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	out := make([]fiber.Map, 0, len(messages))
	for _, msg := range messages {
		out = append(out, fiber.Map{
			"id":        msg.ID,
			"name":      msg.Name,
			"email":     msg.Email,
			"message":   msg.Message,
			"timestamp": msg.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}
	log.Printf("Successfully listed %d contact messages", len(out))
	return c.JSON(out)
}
