package models

// QuestionTag links questions to tags.
type QuestionTag struct {
	QuestionID uint64 `gorm:"primarykey" json:"question_id"`
	TagID      uint64 `gorm:"primarykey" json:"tag_id"`

	// Relations
	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
	Tag      Tag      `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}
