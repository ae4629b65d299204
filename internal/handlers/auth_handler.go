package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/services"
)

const InvalidCredentialsError = "Invalid credentials"

// AuthHandler defines handlers for admin registration and login.
type AuthHandler struct {
	Service *services.AuthService
	Metrics *metrics.Collector
}

// NewAuthHandler creates a new AuthHandler with the given AuthService.
func NewAuthHandler(service *services.AuthService, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{Service: service, Metrics: collector}
}

// AdminForm is the request body for admin registration.
type AdminForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterAdmin handles POST /register-admin/ to create the admin account.
// @Summary Register an admin account
// @Description Creates an admin account. Registration closes once an admin exists unless open registration is configured.
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body AdminForm true "Admin credentials"
// @Success 200 {object} map[string]interface{} "Admin created successfully"
// @Failure 400 {object} map[string]interface{} "Admin already exists"
// @Failure 403 {object} map[string]interface{} "Registration closed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /register-admin/ [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var form AdminForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing admin registration: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "Invalid request format",
		})
	}
	if form.Username == "" || form.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true, "message": "username and password are required",
		})
	}

	admin, err := h.Service.RegisterAdmin(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			log.Printf("Admin registration rejected, username taken: %s", form.Username)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": true, "message": "Admin already exists",
			})
		}
		if errors.Is(err, services.ErrRegistrationClosed) {
			log.Printf("Admin registration rejected, registration closed")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": true, "message": "Admin registration is closed",
			})
		}
		log.Printf("Error registering admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Created admin account: ID=%d, Username=%s", admin.ID, admin.Username)
	return c.JSON(fiber.Map{"message": "Admin created successfully"})
}

// Login handles POST /token/ to exchange form credentials for a bearer token.
// @Summary Obtain an access token
// @Description Exchanges username/password form credentials for a signed bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Admin username"
// @Param password formData string true "Admin password"
// @Success 200 {object} map[string]interface{} "access_token and token_type"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /token/ [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	admin, err := h.Service.Authenticate(username, password)
	if err != nil {
		log.Printf("Error authenticating admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}
	if admin == nil {
		log.Printf("Failed login attempt - Username: %s, IP: %s", username, c.IP())
		if h.Metrics != nil {
			h.Metrics.IncrementAuthFailures()
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true, "message": InvalidCredentialsError,
		})
	}

	token, err := h.Service.IssueToken(admin.Username)
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true, "message": err.Error(),
		})
	}

	log.Printf("Issued access token for admin: %s", admin.Username)
	return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
}
