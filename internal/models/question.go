package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	AuthorID    uint64         `gorm:"not null;index" json:"author_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author  User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Answers []Answer      `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
	Tags    []QuestionTag `gorm:"foreignKey:QuestionID" json:"tags,omitempty"`
}
