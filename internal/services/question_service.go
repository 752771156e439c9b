package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrUnknownTag       = errors.New("one or more tags do not exist")
)

// QuestionService handles question business logic
type QuestionService struct {
	questionRepo repository.QuestionRepository
	tagRepo      repository.TagRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repository.QuestionRepository, tagRepo repository.TagRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		tagRepo:      tagRepo,
	}
}

// CreateQuestionInput represents input for creating a question
type CreateQuestionInput struct {
	Title       string
	Description string
	TagIDs      []uint64
	AuthorID    uint64
}

// Create validates and creates a question with its tag links
func (s *QuestionService) Create(input CreateQuestionInput) (*models.Question, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	tagIDs := uniqueUint64(input.TagIDs)
	if len(tagIDs) > 0 {
		count, err := s.tagRepo.CountByIDs(tagIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to verify tags: %w", err)
		}
		if int(count) != len(tagIDs) {
			return nil, ErrUnknownTag
		}
	}

	question := &models.Question{
		Title:       title,
		Description: input.Description,
		AuthorID:    input.AuthorID,
	}

	if err := s.questionRepo.Create(question, tagIDs); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return s.questionRepo.FindByID(question.ID, "Author", "Tags.Tag", "Answers")
}

// Get returns a question with its author, tags, and answers
func (s *QuestionService) Get(id uint64) (*models.Question, error) {
	question, err := s.questionRepo.FindByID(id,
		"Author", "Tags.Tag", "Answers", "Answers.Author", "Answers.Votes")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	return question, nil
}

// List returns questions newest first with pagination
func (s *QuestionService) List(page, pageSize int) ([]models.Question, int64, error) {
	questions, total, err := s.questionRepo.List(page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, total, nil
}

func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
