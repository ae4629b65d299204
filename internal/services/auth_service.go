package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

// Claims carries the registered JWT claims; the admin username is the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// AuthService handles password hashing, credential checks and bearer tokens.
type AuthService struct {
	Repo             *repository.AdminRepositoryImpl
	secretKey        []byte
	tokenTTL         time.Duration
	bcryptCost       int
	openRegistration bool
}

// NewAuthService creates a new AuthService with the given repository and token settings.
func NewAuthService(repo *repository.AdminRepositoryImpl, secretKey []byte, tokenTTL time.Duration, bcryptCost int, openRegistration bool) *AuthService {
	return &AuthService{
		Repo:             repo,
		secretKey:        secretKey,
		tokenTTL:         tokenTTL,
		bcryptCost:       bcryptCost,
		openRegistration: openRegistration,
	}
}

// HashPassword produces a one-way bcrypt hash of the plaintext password.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (s *AuthService) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticate looks up the admin by username and verifies the password.
// Unknown username and wrong password both return (nil, nil) so callers cannot
// tell which check failed.
func (s *AuthService) Authenticate(username, password string) (*models.Admin, error) {
	admin, err := s.Repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !s.CheckPassword(password, admin.PasswordHash) {
		return nil, nil
	}
	return admin, nil
}

// RegisterAdmin creates a new admin account. Registration is only allowed
// while no admin exists, unless open registration is configured.
func (s *AuthService) RegisterAdmin(username, password string) (*models.Admin, error) {
	if _, err := s.Repo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	count, err := s.Repo.Count()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to count admins")
	}
	if count > 0 && !s.openRegistration {
		return nil, ErrRegistrationClosed
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := s.Repo.Create(admin); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save admin")
	}
	return admin, nil
}

// IssueToken produces a signed HS256 token for the given admin username.
func (s *AuthService) IssueToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", pkgerrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// ResolveToken verifies the token signature and expiry and resolves the subject
// to a known admin. Every failure mode yields the same ErrUnauthorized.
func (s *AuthService) ResolveToken(tokenString string) (*models.Admin, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, ErrUnauthorized
	}
	admin, err := s.Repo.GetByUsername(claims.Subject)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return admin, nil
}
