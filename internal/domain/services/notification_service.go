package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/OussemaDev7/AfarTech-Project/internal/domain/models"
	"github.com/OussemaDev7/AfarTech-Project/internal/infrastructure/config"
	Logger "github.com/OussemaDev7/AfarTech-Project/pkg/logger"
)

// notificationCacheTTL bounds how stale a cached notification list can get.
const notificationCacheTTL = 30 * time.Second

// InterfaceNotificationService defines the notification read-path contract
type InterfaceNotificationService interface {
	GetNotificationsByAdminID(adminID uint) ([]models.Notification, error)
}

// NotificationService reads the notifications addressed to an admin.
// Notification rows are written by an external producer; this service never
// creates or deletes them.
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService // optional, nil disables caching
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetNotificationsByAdminID returns every notification whose receiver is the
// given admin. Each row's receiver is re-checked before anything is returned
// or cached; no row for another receiver may leave this method.
func (s *NotificationService) GetNotificationsByAdminID(adminID uint) ([]models.Notification, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.GetCachedNotifications(adminID); err == nil {
			return cached, nil
		}
	}

	var notifications []models.Notification
	if err := s.DB.Where("receiver_id = ?", adminID).Find(&notifications).Error; err != nil {
		return nil, err
	}

	filtered := make([]models.Notification, 0, len(notifications))
	for _, n := range notifications {
		if n.ReceiverID == adminID {
			filtered = append(filtered, n)
		}
	}

	if s.Redis != nil {
		if err := s.Redis.CacheNotifications(adminID, filtered, notificationCacheTTL); err != nil {
			Logger.Warning("failed to cache notifications for admin %d: %v", adminID, err)
		}
	}

	return filtered, nil
}
