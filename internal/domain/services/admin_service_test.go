package services

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
)

// newTestDB opens a fresh in-memory database for one test. The pool is
// pinned to a single connection so every query sees the same sqlite memory.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Notification{}))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{JWTSecretKey: "test-secret"}
}

func fakeAdmin(password string) *models.Admin {
	return &models.Admin{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Password:  password,
		Role:      "ADMIN",
		Image:     gofakeit.URL(),
	}
}

func TestCreateAdmin_HashesPassword(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	admin := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(admin))

	assert.NotZero(t, admin.ID)
	assert.NotEqual(t, "pw1", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("pw1")))
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	first := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(first))

	second := fakeAdmin("pw2")
	second.Email = first.Email
	err := svc.CreateAdmin(second)
	require.ErrorIs(t, err, ErrEmailExists)

	// The store must be unchanged after the rejected create.
	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetAdminByID_RoundTrip(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	created := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(created))

	got, err := svc.GetAdminByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.FirstName, got.FirstName)
	assert.Equal(t, created.LastName, got.LastName)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.Role, got.Role)
	assert.Equal(t, created.Image, got.Image)
	assert.NotEqual(t, "pw1", got.Password)
}

func TestGetAdminByID_AbsentIsNotAnError(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	got, err := svc.GetAdminByID(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllAdmins(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.CreateAdmin(fakeAdmin("pw")))
	}

	admins, err := svc.GetAllAdmins()
	require.NoError(t, err)
	assert.Len(t, admins, 3)
}

func TestGetAdminByEmail(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	created := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(created))

	got, err := svc.GetAdminByEmail(created.Email)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetAdminByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestUpdateAdmin_ReplacesFields(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	created := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(created))

	replacement := fakeAdmin("")
	replacement.Role = "SUPERADMIN"

	updated, err := svc.UpdateAdmin(created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, replacement.FirstName, updated.FirstName)
	assert.Equal(t, replacement.LastName, updated.LastName)
	assert.Equal(t, replacement.Email, updated.Email)
	assert.Equal(t, "SUPERADMIN", updated.Role)
	assert.Equal(t, replacement.Image, updated.Image)
}

func TestUpdateAdmin_EmptyPasswordKeepsHash(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	created := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(created))
	oldHash := created.Password

	replacement := fakeAdmin("")
	updated, err := svc.UpdateAdmin(created.ID, replacement)
	require.NoError(t, err)

	assert.Equal(t, oldHash, updated.Password)
	assert.True(t, svc.CheckPassword("pw1", updated.Password))
}

func TestUpdateAdmin_NewPasswordRehashes(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	created := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(created))
	oldHash := created.Password

	replacement := fakeAdmin("pw2")
	updated, err := svc.UpdateAdmin(created.ID, replacement)
	require.NoError(t, err)

	assert.NotEqual(t, oldHash, updated.Password)
	assert.False(t, svc.CheckPassword("pw1", updated.Password))
	assert.True(t, svc.CheckPassword("pw2", updated.Password))
}

func TestUpdateAdmin_NotFound(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	_, err := svc.UpdateAdmin(9999, fakeAdmin(""))
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestDeleteAdmin(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	created := fakeAdmin("pw1")
	require.NoError(t, svc.CreateAdmin(created))

	require.NoError(t, svc.DeleteAdmin(created.ID))

	got, err := svc.GetAdminByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteAdmin_UnknownIDIsSilent(t *testing.T) {
	svc := NewAdminService(newTestDB(t), newTestConfig())

	assert.NoError(t, svc.DeleteAdmin(9999))
}
