package dto

import (
	"time"

	"github.com/stackit/stackit-api/internal/models"
)

// DashboardStats holds the four dashboard counters.
type DashboardStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalQuestions  int64 `json:"totalQuestions"`
	TotalAnswers    int64 `json:"totalAnswers"`
	AnswersThisWeek int64 `json:"answersThisWeek"`
}

// RecentQuestionDTO is a dashboard row for a recently created question.
type RecentQuestionDTO struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	AuthorUsername string    `json:"author_username"`
	AnswerCount    int       `json:"answer_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecentUserDTO is a dashboard row for a recently registered user.
type RecentUserDTO struct {
	ID        uint64          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// PagedListing wraps a dashboard listing with its pagination state.
type PagedListing[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Pages      []int `json:"pages"`
}
