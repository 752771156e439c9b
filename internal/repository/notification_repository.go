package repository

import (
	"github.com/stackit/stackit-api/internal/database"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/utils"
	"gorm.io/gorm"
)

// GormNotificationRepository is a GORM implementation of NotificationRepository
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Create creates a new notification
func (r *GormNotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// ListByUser lists a user's notifications newest first with pagination
func (r *GormNotificationRepository) ListByUser(userID uint64, page, pageSize int) ([]models.Notification, int64, error) {
	var notifications []models.Notification

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if page > 0 && pageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  pageSize,
			Offset: (page - 1) * pageSize,
		}))
	}

	if err := listQuery.Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CountUnread counts a user's unread notifications
func (r *GormNotificationRepository) CountUnread(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead marks one of the user's notifications as read and reports how many
// rows matched
func (r *GormNotificationRepository) MarkRead(id, userID uint64) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
