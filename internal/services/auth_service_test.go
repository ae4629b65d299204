package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}, &models.Project{}, &models.Admin{}))
	return db
}

func newAuthService(t *testing.T, db *gorm.DB, ttl time.Duration, openRegistration bool) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewAdminRepository(db), []byte("test-secret"), ttl, bcrypt.MinCost, openRegistration)
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newAuthService(t, newTestDB(t), time.Hour, false)

	hash, err := svc.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, svc.CheckPassword("s3cret", hash))
	assert.False(t, svc.CheckPassword("wrong", hash))
}

func TestAuthenticate_SameResultForUnknownUserAndWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, false)

	_, err := svc.RegisterAdmin("admin", "correct-password")
	require.NoError(t, err)

	unknown, err := svc.Authenticate("nobody", "correct-password")
	require.NoError(t, err)
	wrongPassword, err := svc.Authenticate("admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, unknown)
	assert.Nil(t, wrongPassword)

	admin, err := svc.Authenticate("admin", "correct-password")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin", admin.Username)
}

func TestIssueAndResolveToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, false)

	_, err := svc.RegisterAdmin("admin", "pw")
	require.NoError(t, err)

	token, err := svc.IssueToken("admin")
	require.NoError(t, err)

	admin, err := svc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)
}

func TestResolveToken_Expired(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, -time.Minute, false)

	_, err := svc.RegisterAdmin("admin", "pw")
	require.NoError(t, err)

	token, err := svc.IssueToken("admin")
	require.NoError(t, err)

	_, err = svc.ResolveToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveToken_Tampered(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, false)

	_, err := svc.RegisterAdmin("admin", "pw")
	require.NoError(t, err)

	token, err := svc.IssueToken("admin")
	require.NoError(t, err)

	// Signed with a different key
	other := NewAuthService(svc.Repo, []byte("other-secret"), time.Hour, bcrypt.MinCost, false)
	foreign, err := other.IssueToken("admin")
	require.NoError(t, err)

	_, err = svc.ResolveToken(foreign)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ResolveToken(token + "x")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ResolveToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ResolveToken("")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveToken_UnknownSubject(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, false)

	token, err := svc.IssueToken("ghost")
	require.NoError(t, err)

	_, err = svc.ResolveToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegisterAdmin_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, true)

	_, err := svc.RegisterAdmin("admin", "first-password")
	require.NoError(t, err)

	_, err = svc.RegisterAdmin("admin", "second-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The first admin's credentials remain valid.
	admin, err := svc.Authenticate("admin", "first-password")
	require.NoError(t, err)
	require.NotNil(t, admin)
}

func TestRegisterAdmin_ClosedAfterFirstAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, false)

	_, err := svc.RegisterAdmin("admin", "pw")
	require.NoError(t, err)

	_, err = svc.RegisterAdmin("second", "pw")
	assert.ErrorIs(t, err, ErrRegistrationClosed)

	// Duplicate usernames still surface as a conflict, not as closed registration.
	_, err = svc.RegisterAdmin("admin", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterAdmin_OpenRegistrationAllowsMore(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db, time.Hour, true)

	_, err := svc.RegisterAdmin("admin", "pw")
	require.NoError(t, err)
	_, err = svc.RegisterAdmin("second", "pw")
	require.NoError(t, err)
}
