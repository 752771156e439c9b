package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stackit/stackit-api/internal/dto"
	apierrors "github.com/stackit/stackit-api/internal/errors"
	"github.com/stackit/stackit-api/internal/middleware"
	"github.com/stackit/stackit-api/internal/models"
	"github.com/stackit/stackit-api/internal/services"
)

// AnswerHandler coordinates answer HTTP handlers.
type AnswerHandler struct {
	answerService *services.AnswerService
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
	}
}

// CreateAnswer posts an answer to a question. The question author is
// notified when someone else answers.
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateAnswerRequest struct {
		Content    string `json:"content" binding:"required"`
		QuestionID uint64 `json:"questionId" binding:"required"`
	}

	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Content and question ID are required")
		return
	}

	answer, err := h.answerService.Create(services.CreateAnswerInput{
		Content:    req.Content,
		QuestionID: req.QuestionID,
		AuthorID:   userID,
	})
	if err != nil {
		respondAnswerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnswerDTO(*answer))
}

// AcceptAnswer marks an answer as accepted. Only the question author may
// accept, and at most one answer per question stays accepted.
func (h *AnswerHandler) AcceptAnswer(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AcceptAnswerRequest struct {
		AnswerID uint64 `json:"answerId" binding:"required"`
	}

	var req AcceptAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Answer ID is required")
		return
	}

	answer, err := h.answerService.Accept(req.AnswerID, userID)
	if err != nil {
		respondAnswerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAnswerDTO(*answer))
}

// VoteAnswer records the caller's vote on an answer and returns the new score.
func (h *AnswerHandler) VoteAnswer(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	answerID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid answer ID")
		return
	}

	type VoteRequest struct {
		Type string `json:"type" binding:"required"`
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Vote type is required")
		return
	}

	score, err := h.answerService.Vote(services.VoteInput{
		AnswerID: answerID,
		UserID:   userID,
		Type:     models.VoteType(req.Type),
	})
	if err != nil {
		respondAnswerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer_id": answerID,
		"score":     score,
	})
}

func respondAnswerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrInvalidVoteType):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrAnswerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotQuestionAuthor):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
