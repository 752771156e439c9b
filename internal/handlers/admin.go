package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/dto"
	apierrors "github.com/stackit/stackit-api/internal/errors"
	"github.com/stackit/stackit-api/internal/middleware"
	"github.com/stackit/stackit-api/internal/services"
	"github.com/stackit/stackit-api/internal/utils"
)

// AdminHandler coordinates moderation and dashboard HTTP handlers. All routes
// sit behind RequireAuth and RequireAdmin.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// DeleteQuestion removes a question and everything under it.
func (h *AdminHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	if err := h.adminService.DeleteQuestion(id); err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Question deleted successfully",
		"deletedQuestionId": id,
	})
}

// DeleteAnswer removes an answer and its votes.
func (h *AdminHandler) DeleteAnswer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid answer ID")
		return
	}

	if err := h.adminService.DeleteAnswer(id); err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Answer deleted successfully",
		"deletedAnswerId": id,
	})
}

// DeleteUser removes a user and all content they own.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	deleted, err := h.adminService.DeleteUser(id, actorID)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "User deleted successfully",
		"deletedUserId":   deleted.ID,
		"deletedUsername": deleted.Username,
	})
}

// UpdateUserRole promotes or demotes a user.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	actorID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	type UpdateRoleRequest struct {
		Action string `json:"action" binding:"required"`
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Action is required")
		return
	}

	user, err := h.adminService.UpdateRole(id, actorID, req.Action)
	if err != nil {
		respondAdminError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %sd successfully", req.Action),
		"user":    dto.ToUserRoleDTO(*user),
	})
}

// Dashboard returns the admin overview: four counters plus the recent
// question and user listings, each independently paginated.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	questionsPage, _ := strconv.Atoi(c.DefaultQuery("questionsPage", "1"))
	usersPage, _ := strconv.Atoi(c.DefaultQuery("usersPage", "1"))

	result, err := h.adminService.Dashboard(questionsPage, usersPage)
	if err != nil {
		apierrors.InternalError(c, "Failed to load dashboard")
		return
	}

	questions := make([]dto.RecentQuestionDTO, 0, len(result.RecentQuestions))
	for _, q := range result.RecentQuestions {
		questions = append(questions, dto.RecentQuestionDTO{
			ID:             q.ID,
			Title:          q.Title,
			AuthorUsername: q.Author.Username,
			AnswerCount:    len(q.Answers),
			CreatedAt:      q.CreatedAt,
		})
	}

	users := make([]dto.RecentUserDTO, 0, len(result.RecentUsers))
	for _, u := range result.RecentUsers {
		users = append(users, dto.RecentUserDTO{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": dto.DashboardStats{
			TotalUsers:      result.TotalUsers,
			TotalQuestions:  result.TotalQuestions,
			TotalAnswers:    result.TotalAnswers,
			AnswersThisWeek: result.AnswersThisWeek,
		},
		"recentQuestions": dto.PagedListing[dto.RecentQuestionDTO]{
			Items:      questions,
			Page:       result.QuestionsPage,
			TotalPages: result.QuestionsTotalPages,
			Pages:      utils.PageWindow(result.QuestionsPage, result.QuestionsTotalPages),
		},
		"recentUsers": dto.PagedListing[dto.RecentUserDTO]{
			Items:      users,
			Page:       result.UsersPage,
			TotalPages: result.UsersTotalPages,
			Pages:      utils.PageWindow(result.UsersPage, result.UsersTotalPages),
		},
	})
}

func respondAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCannotDeleteSelf),
		errors.Is(err, services.ErrCannotDeleteAdmin),
		errors.Is(err, services.ErrCannotModifyOwnRole),
		errors.Is(err, services.ErrInvalidRoleAction),
		errors.Is(err, services.ErrAlreadyAdmin),
		errors.Is(err, services.ErrAlreadyUser):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrAnswerNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
