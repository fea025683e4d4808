package tag

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayurihegde/evently-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

func (h *Handler) List(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}

	tags, err := h.Service.List(org)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tags"})
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *Handler) Create(c *gin.Context) {
	org, ok := middleware.GetOrganizationID(c)
	if !ok {
		return
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.Service.Create(org, req.Name)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tag name cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tag"})
		return
	}
	c.JSON(http.StatusCreated, t)
}
