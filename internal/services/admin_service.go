package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/stackit/stackit-api/internal/constants"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
	ErrCannotDeleteAdmin   = errors.New("cannot delete another admin user")
	ErrCannotModifyOwnRole = errors.New("cannot modify your own role")
	ErrInvalidRoleAction   = errors.New(`invalid action, use "promote" or "demote"`)
	ErrAlreadyAdmin        = errors.New("user is already an admin")
	ErrAlreadyUser         = errors.New("user is already a regular user")
)

// AdminService handles moderation and dashboard aggregation
type AdminService struct {
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// DeleteQuestion removes a question and all of its dependent rows.
func (s *AdminService) DeleteQuestion(id uint64) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to find question: %w", err)
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	return nil
}

// DeleteAnswer removes an answer and its votes.
func (s *AdminService) DeleteAnswer(id uint64) error {
	if _, err := s.answerRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnswerNotFound
		}
		return fmt.Errorf("failed to find answer: %w", err)
	}

	if err := s.answerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}

	return nil
}

// DeleteUser removes a user and all content they own. Admins can neither
// delete themselves nor another admin; an admin must be demoted first.
func (s *AdminService) DeleteUser(targetID, actorID uint64) (*models.User, error) {
	if targetID == actorID {
		return nil, ErrCannotDeleteSelf
	}

	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if target.Role == models.RoleAdmin {
		return nil, ErrCannotDeleteAdmin
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return target, nil
}

// UpdateRole promotes or demotes a user. Promoting an admin or demoting a
// regular user is rejected rather than silently accepted.
func (s *AdminService) UpdateRole(targetID, actorID uint64, action string) (*models.User, error) {
	if action != constants.RoleActionPromote && action != constants.RoleActionDemote {
		return nil, ErrInvalidRoleAction
	}

	if targetID == actorID {
		return nil, ErrCannotModifyOwnRole
	}

	target, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var newRole models.UserRole
	if action == constants.RoleActionPromote {
		if target.Role == models.RoleAdmin {
			return nil, ErrAlreadyAdmin
		}
		newRole = models.RoleAdmin
	} else {
		if target.Role == models.RoleUser {
			return nil, ErrAlreadyUser
		}
		newRole = models.RoleUser
	}

	if err := s.userRepo.UpdateRole(targetID, newRole); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	target.Role = newRole
	return target, nil
}

// DashboardResult aggregates the counts and listings for the admin overview.
type DashboardResult struct {
	TotalUsers      int64
	TotalQuestions  int64
	TotalAnswers    int64
	AnswersThisWeek int64

	RecentQuestions     []models.Question
	QuestionsPage       int
	QuestionsTotalPages int

	RecentUsers     []models.User
	UsersPage       int
	UsersTotalPages int
}

// Dashboard computes the overview counts and the two paginated listings.
// Pages are 1-based; out-of-range pages yield empty listings. The weekly
// answer count covers the trailing 7x24h window from now.
func (s *AdminService) Dashboard(questionsPage, usersPage int) (*DashboardResult, error) {
	if questionsPage < 1 {
		questionsPage = 1
	}
	if usersPage < 1 {
		usersPage = 1
	}

	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalQuestions, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	totalAnswers, err := s.answerRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	weekAgo := time.Now().Add(-7 * 24 * time.Hour)
	answersThisWeek, err := s.answerRepo.CountCreatedSince(weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent answers: %w", err)
	}

	questions, _, err := s.questionRepo.List(questionsPage, constants.DashboardPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent questions: %w", err)
	}

	users, err := s.userRepo.ListRecent(usersPage, constants.DashboardPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}

	return &DashboardResult{
		TotalUsers:      totalUsers,
		TotalQuestions:  totalQuestions,
		TotalAnswers:    totalAnswers,
		AnswersThisWeek: answersThisWeek,

		RecentQuestions:     questions,
		QuestionsPage:       questionsPage,
		QuestionsTotalPages: totalPages(totalQuestions, constants.DashboardPageSize),

		RecentUsers:     users,
		UsersPage:       usersPage,
		UsersTotalPages: totalPages(totalUsers, constants.DashboardPageSize),
	}, nil
}

func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
