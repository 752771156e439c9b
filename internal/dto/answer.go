package dto

import (
	"time"

	"github.com/stackit/stackit-api/internal/models"
)

// AnswerDTO is the projection of an answer with its author and vote score.
type AnswerDTO struct {
	ID         uint64    `json:"id"`
	Content    string    `json:"content"`
	QuestionID uint64    `json:"question_id"`
	IsAccepted bool      `json:"is_accepted"`
	Author     AuthorDTO `json:"author"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToAnswerDTO converts an answer with preloaded Author and Votes into its
// projection. Score is upvotes minus downvotes.
func ToAnswerDTO(a models.Answer) AnswerDTO {
	score := 0
	for _, v := range a.Votes {
		if v.Type == models.VoteUp {
			score++
		} else {
			score--
		}
	}

	return AnswerDTO{
		ID:         a.ID,
		Content:    a.Content,
		QuestionID: a.QuestionID,
		IsAccepted: a.IsAccepted,
		Author: AuthorDTO{
			ID:       a.Author.ID,
			Username: a.Author.Username,
			Name:     a.Author.Name,
		},
		Score:     score,
		CreatedAt: a.CreatedAt,
	}
}
