package models

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	AuthorID   uint64         `gorm:"not null;index" json:"author_id"`
	QuestionID uint64         `gorm:"not null;index" json:"question_id"`
	IsAccepted bool           `gorm:"not null;default:false" json:"is_accepted"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author   User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Question Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	Votes    []Vote   `gorm:"foreignKey:AnswerID" json:"votes,omitempty"`
}
