package dto

import (
	"time"

	"github.com/stackit/stackit-api/internal/models"
)

// TagDTO is the projection of a tag attached to a question.
type TagDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AuthorDTO is the minimal author projection embedded in content responses.
type AuthorDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// QuestionDTO is the listing projection of a question.
type QuestionDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      AuthorDTO `json:"author"`
	Tags        []TagDTO  `json:"tags"`
	AnswerCount int       `json:"answer_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionDetailDTO adds the full answer list to a question projection.
type QuestionDetailDTO struct {
	QuestionDTO
	Answers []AnswerDTO `json:"answers"`
}

// ToQuestionDTO converts a question with preloaded Author, Tags.Tag and
// Answers into its listing projection.
func ToQuestionDTO(q models.Question) QuestionDTO {
	tags := make([]TagDTO, 0, len(q.Tags))
	for _, link := range q.Tags {
		tags = append(tags, TagDTO{
			ID:    link.Tag.ID,
			Name:  link.Tag.Name,
			Color: link.Tag.Color,
		})
	}

	return QuestionDTO{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Author: AuthorDTO{
			ID:       q.Author.ID,
			Username: q.Author.Username,
			Name:     q.Author.Name,
		},
		Tags:        tags,
		AnswerCount: len(q.Answers),
		CreatedAt:   q.CreatedAt,
	}
}

// ToQuestionDetailDTO converts a fully preloaded question into its detail
// projection, answers included.
func ToQuestionDetailDTO(q models.Question) QuestionDetailDTO {
	answers := make([]AnswerDTO, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, ToAnswerDTO(a))
	}

	return QuestionDetailDTO{
		QuestionDTO: ToQuestionDTO(q),
		Answers:     answers,
	}
}
