package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/dto"
	apierrors "github.com/stackit/stackit-api/internal/errors"
	"github.com/stackit/stackit-api/internal/middleware"
	"github.com/stackit/stackit-api/internal/services"
	"github.com/stackit/stackit-api/internal/utils"
)

// QuestionHandler coordinates question HTTP handlers.
type QuestionHandler struct {
	questionService *services.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// CreateQuestion creates a question authored by the current user.
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateQuestionRequest struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		TagIDs      []uint64 `json:"tagIds"`
	}

	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	question, err := h.questionService.Create(services.CreateQuestionInput{
		Title:       req.Title,
		Description: req.Description,
		TagIDs:      req.TagIDs,
		AuthorID:    userID,
	})
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuestionDTO(*question))
}

// ListQuestions returns questions newest first with pagination.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	questions, total, err := h.questionService.List(params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch questions")
		return
	}

	items := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		items = append(items, dto.ToQuestionDTO(q))
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": items,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetQuestion returns a question with its answers.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	question, err := h.questionService.Get(id)
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionDetailDTO(*question))
}

func respondQuestionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrUnknownTag):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrQuestionNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
