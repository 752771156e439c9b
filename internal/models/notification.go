package models

import "time"

type NotificationType string

const (
	NotificationAnswerReceived NotificationType = "ANSWER_RECEIVED"
	NotificationAnswerAccepted NotificationType = "ANSWER_ACCEPTED"
)

type Notification struct {
	ID        uint64           `gorm:"primarykey" json:"id"`
	UserID    uint64           `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title     string           `gorm:"type:varchar(255);not null" json:"title"`
	Content   string           `gorm:"type:text" json:"content"`
	IsRead    bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
