package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAnswerNotFound    = errors.New("answer not found")
	ErrContentRequired   = errors.New("content is required")
	ErrNotQuestionAuthor = errors.New("only question author can accept answers")
	ErrInvalidVoteType   = errors.New("invalid vote type")
)

// AnswerService handles answer business logic
type AnswerService struct {
	answerRepo       repository.AnswerRepository
	questionRepo     repository.QuestionRepository
	voteRepo         repository.VoteRepository
	notificationRepo repository.NotificationRepository
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	voteRepo repository.VoteRepository,
	notificationRepo repository.NotificationRepository,
) *AnswerService {
	return &AnswerService{
		answerRepo:       answerRepo,
		questionRepo:     questionRepo,
		voteRepo:         voteRepo,
		notificationRepo: notificationRepo,
	}
}

// CreateAnswerInput represents input for creating an answer
type CreateAnswerInput struct {
	Content    string
	QuestionID uint64
	AuthorID   uint64
}

// Create validates and creates an answer. When the question belongs to
// someone else its author is notified; the notification is best-effort and
// never fails the request.
func (s *AnswerService) Create(input CreateAnswerInput) (*models.Answer, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	question, err := s.questionRepo.FindByID(input.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	answer := &models.Answer{
		Content:    input.Content,
		QuestionID: question.ID,
		AuthorID:   input.AuthorID,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, fmt.Errorf("failed to create answer: %w", err)
	}

	if question.AuthorID != input.AuthorID {
		s.notify(&models.Notification{
			UserID:  question.AuthorID,
			Type:    models.NotificationAnswerReceived,
			Title:   "New Answer",
			Content: fmt.Sprintf("Someone answered your question: %q", question.Title),
		})
	}

	return s.answerRepo.FindByID(answer.ID, "Author", "Votes")
}

// Accept marks an answer as the accepted one for its question. Only the
// question author may accept; the previous accepted answer, if any, is
// cleared by the same update.
func (s *AnswerService) Accept(answerID, actorID uint64) (*models.Answer, error) {
	answer, err := s.answerRepo.FindByID(answerID, "Question")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to find answer: %w", err)
	}

	if answer.Question.AuthorID != actorID {
		return nil, ErrNotQuestionAuthor
	}

	if err := s.answerRepo.Accept(answer.QuestionID, answer.ID); err != nil {
		return nil, fmt.Errorf("failed to accept answer: %w", err)
	}

	if answer.AuthorID != actorID {
		s.notify(&models.Notification{
			UserID:  answer.AuthorID,
			Type:    models.NotificationAnswerAccepted,
			Title:   "Answer Accepted",
			Content: fmt.Sprintf("Your answer to %q was accepted!", answer.Question.Title),
		})
	}

	return s.answerRepo.FindByID(answer.ID, "Author", "Votes")
}

// VoteInput represents input for voting on an answer
type VoteInput struct {
	AnswerID uint64
	UserID   uint64
	Type     models.VoteType
}

// Vote records or replaces the caller's vote on an answer and returns the
// resulting score.
func (s *AnswerService) Vote(input VoteInput) (int, error) {
	if input.Type != models.VoteUp && input.Type != models.VoteDown {
		return 0, ErrInvalidVoteType
	}

	if _, err := s.answerRepo.FindByID(input.AnswerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrAnswerNotFound
		}
		return 0, fmt.Errorf("failed to find answer: %w", err)
	}

	vote := &models.Vote{
		UserID:   input.UserID,
		AnswerID: input.AnswerID,
		Type:     input.Type,
	}
	if err := s.voteRepo.Upsert(vote); err != nil {
		return 0, fmt.Errorf("failed to record vote: %w", err)
	}

	votes, err := s.voteRepo.ListByAnswer(input.AnswerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load votes: %w", err)
	}

	score := 0
	for _, v := range votes {
		if v.Type == models.VoteUp {
			score++
		} else {
			score--
		}
	}

	return score, nil
}

// notify inserts a notification after the triggering mutation has committed.
// Failures are logged and swallowed: a broken notification store must not
// undo or fail the mutation.
func (s *AnswerService) notify(notification *models.Notification) {
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Warn().
			Err(err).
			Uint64("user_id", notification.UserID).
			Str("type", string(notification.Type)).
			Msg("failed to create notification")
	}
}
