package repository

import (
	"time"

	"github.com/stackit/stackit-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// UpdateRole sets a user's role
	UpdateRole(id uint64, role models.UserRole) error

	// Delete deletes a user and everything they own
	Delete(id uint64) error

	// ListRecent lists users ordered by creation time, newest first
	ListRecent(page, pageSize int) ([]models.User, error)

	// Count returns the total number of users
	Count() (int64, error)
}

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	// Create creates a question together with its tag links
	Create(question *models.Question, tagIDs []uint64) error

	// FindByID finds a question by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Question, error)

	// List retrieves questions newest first with pagination
	List(page, pageSize int) ([]models.Question, int64, error)

	// Delete deletes a question and its answers, their votes, and tag links
	Delete(id uint64) error

	// Count returns the total number of questions
	Count() (int64, error)
}

// AnswerRepository defines the interface for answer data access
type AnswerRepository interface {
	// Create creates a new answer
	Create(answer *models.Answer) error

	// FindByID finds an answer by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Answer, error)

	// Accept marks the given answer as accepted and clears any previously
	// accepted answer of the same question in one conditional update
	Accept(questionID, answerID uint64) error

	// Delete deletes an answer and its votes
	Delete(id uint64) error

	// Count returns the total number of answers
	Count() (int64, error)

	// CountCreatedSince counts answers created at or after the given time
	CountCreatedSince(since time.Time) (int64, error)
}

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	// Upsert records a vote; an existing (user, answer) vote has its type replaced
	Upsert(vote *models.Vote) error

	// ListByAnswer lists all votes on an answer
	ListByAnswer(answerID uint64) ([]models.Vote, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// List returns all tags ordered by name
	List() ([]models.Tag, error)

	// CountByIDs counts how many of the given tag IDs exist
	CountByIDs(ids []uint64) (int64, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(notification *models.Notification) error

	// ListByUser lists a user's notifications newest first with pagination
	ListByUser(userID uint64, page, pageSize int) ([]models.Notification, int64, error)

	// CountUnread counts a user's unread notifications
	CountUnread(userID uint64) (int64, error)

	// MarkRead marks one of the user's notifications as read and reports
	// how many rows matched
	MarkRead(id, userID uint64) (int64, error)
}
