package services

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
)

func seedAdmin(t *testing.T, db *gorm.DB) *models.Admin {
	t.Helper()

	admin := fakeAdmin("pw")
	require.NoError(t, NewAdminService(db, newTestConfig()).CreateAdmin(admin))
	return admin
}

func seedNotification(t *testing.T, db *gorm.DB, receiverID uint) *models.Notification {
	t.Helper()

	n := &models.Notification{
		Title:       gofakeit.Sentence(3),
		Description: gofakeit.Sentence(8),
		Type:        "INFO",
		SentAt:      time.Now(),
		ReceiverID:  receiverID,
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestGetNotificationsByAdminID_FiltersByReceiver(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, newTestConfig(), nil)

	first := seedAdmin(t, db)
	second := seedAdmin(t, db)

	seedNotification(t, db, first.ID)
	seedNotification(t, db, first.ID)
	seedNotification(t, db, second.ID)

	notifications, err := svc.GetNotificationsByAdminID(first.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, first.ID, n.ReceiverID)
	}
}

func TestGetNotificationsByAdminID_EmptyList(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db, newTestConfig(), nil)

	admin := seedAdmin(t, db)

	notifications, err := svc.GetNotificationsByAdminID(admin.ID)
	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

// stubRedisService is an in-memory stand-in for the Redis cache.
type stubRedisService struct {
	lists map[uint][]models.Notification
}

func newStubRedisService() *stubRedisService {
	return &stubRedisService{lists: make(map[uint][]models.Notification)}
}

func (s *stubRedisService) Set(string, interface{}, time.Duration) error { return nil }

func (s *stubRedisService) Get(string, interface{}) error { return gorm.ErrRecordNotFound }

func (s *stubRedisService) Delete(string) error { return nil }

func (s *stubRedisService) CacheNotifications(adminID uint, notifications []models.Notification, _ time.Duration) error {
	s.lists[adminID] = notifications
	return nil
}

func (s *stubRedisService) GetCachedNotifications(adminID uint) ([]models.Notification, error) {
	if list, ok := s.lists[adminID]; ok {
		return list, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRedisService) InvalidateNotifications(adminID uint) error {
	delete(s.lists, adminID)
	return nil
}

func TestGetNotificationsByAdminID_ServesFromCache(t *testing.T) {
	db := newTestDB(t)
	redisStub := newStubRedisService()
	svc := NewNotificationService(db, newTestConfig(), redisStub)

	admin := seedAdmin(t, db)
	seedNotification(t, db, admin.ID)

	first, err := svc.GetNotificationsByAdminID(admin.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A row written after the list was cached stays invisible until the
	// cache entry expires or is invalidated.
	seedNotification(t, db, admin.ID)

	second, err := svc.GetNotificationsByAdminID(admin.ID)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	require.NoError(t, redisStub.InvalidateNotifications(admin.ID))

	third, err := svc.GetNotificationsByAdminID(admin.ID)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}
