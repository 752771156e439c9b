package services

import (
	"errors"
	"fmt"

	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService handles notification reads and read-state updates
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
	}
}

// List returns a user's notifications newest first, the total count, and the
// unread count.
func (s *NotificationService) List(userID uint64, page, pageSize int) ([]models.Notification, int64, int64, error) {
	notifications, total, err := s.notificationRepo.ListByUser(userID, page, pageSize)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return notifications, total, unread, nil
}

// MarkRead marks one of the user's notifications as read.
func (s *NotificationService) MarkRead(id, userID uint64) error {
	affected, err := s.notificationRepo.MarkRead(id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
