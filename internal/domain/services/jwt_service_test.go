package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthFixture(t *testing.T) (*gorm.DB, InterfaceJWTService, InterfaceAdminService) {
	t.Helper()

	db := newTestDB(t)
	cfg := newTestConfig()
	return db, NewJWTService(cfg, db), NewAdminService(db, cfg)
}

func TestLogin_HappyPath(t *testing.T) {
	_, jwtSvc, adminSvc := newAuthFixture(t)

	admin := fakeAdmin("pw1")
	require.NoError(t, adminSvc.CreateAdmin(admin))

	loginTime := time.Now()
	result, err := jwtSvc.Login(admin.Email, "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "ADMIN", result.Role)

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, admin.ID, claims.Data.ID)
	assert.Equal(t, admin.Email, claims.Data.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.NotEmpty(t, claims.ID)

	const deltaSeconds = 5
	assert.InDelta(t, loginTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix(), deltaSeconds)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, jwtSvc, _ := newAuthFixture(t)

	result, err := jwtSvc.Login("nobody@example.com", "pw1")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	assert.Nil(t, result)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, jwtSvc, adminSvc := newAuthFixture(t)

	admin := fakeAdmin("pw1")
	require.NoError(t, adminSvc.CreateAdmin(admin))

	result, err := jwtSvc.Login(admin.Email, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, result)
}

func TestLogin_AfterPasswordUpdate(t *testing.T) {
	_, jwtSvc, adminSvc := newAuthFixture(t)

	admin := fakeAdmin("pw1")
	require.NoError(t, adminSvc.CreateAdmin(admin))

	replacement := fakeAdmin("pw2")
	replacement.Email = admin.Email
	_, err := adminSvc.UpdateAdmin(admin.ID, replacement)
	require.NoError(t, err)

	_, err = jwtSvc.Login(admin.Email, "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := jwtSvc.Login(admin.Email, "pw2")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestExtractClaims_RoundTrip(t *testing.T) {
	_, jwtSvc, adminSvc := newAuthFixture(t)

	admin := fakeAdmin("pw1")
	require.NoError(t, adminSvc.CreateAdmin(admin))

	result, err := jwtSvc.Login(admin.Email, "pw1")
	require.NoError(t, err)

	claims, err := jwtSvc.ExtractClaims(result.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.Data.ID)
	assert.Equal(t, admin.Email, claims.Data.Email)
}

func TestExtractClaims_WrongSecret(t *testing.T) {
	db, _, adminSvc := newAuthFixture(t)

	admin := fakeAdmin("pw1")
	require.NoError(t, adminSvc.CreateAdmin(admin))

	otherCfg := newTestConfig()
	otherCfg.JWTSecretKey = "another-secret"
	otherSvc := NewJWTService(otherCfg, db)

	token, err := otherSvc.GenerateToken(admin)
	require.NoError(t, err)

	verifier := NewJWTService(newTestConfig(), db)
	_, err = verifier.ExtractClaims(token)
	assert.Error(t, err)
}
