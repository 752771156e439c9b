package models

import "time"

type VoteType string

const (
	VoteUp   VoteType = "UPVOTE"
	VoteDown VoteType = "DOWNVOTE"
)

type Vote struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_votes_user_answer" json:"user_id"`
	AnswerID  uint64    `gorm:"not null;uniqueIndex:idx_votes_user_answer;index" json:"answer_id"`
	Type      VoteType  `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Answer Answer `gorm:"foreignKey:AnswerID" json:"-"`
}
