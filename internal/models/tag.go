package models

import "time"

type Tag struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Color       string    `gorm:"type:varchar(7)" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}
