package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	// ErrUnauthorized covers every token or credential failure. The cause is
	// deliberately not distinguished.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUsernameTaken signals a duplicate admin username.
	ErrUsernameTaken = errors.New("admin already exists")

	// ErrRegistrationClosed signals that an admin exists and open registration
	// is disabled.
	ErrRegistrationClosed = errors.New("admin registration is closed")

	// ErrInvalidImageType signals an upload with an unsupported content type.
	ErrInvalidImageType = errors.New("invalid image format")
)
