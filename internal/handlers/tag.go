package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/stackit/stackit-api/internal/errors"
	"github.com/stackit/stackit-api/internal/repository"
)

// TagHandler serves the tag catalog.
type TagHandler struct {
	tagRepo repository.TagRepository
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagRepo repository.TagRepository) *TagHandler {
	return &TagHandler{
		tagRepo: tagRepo,
	}
}

// ListTags returns all tags ordered by name.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagRepo.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tags")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags": tags,
	})
}
