package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mayurihegde/evently-backend/internal/auditlog"
	"github.com/mayurihegde/evently-backend/middleware"
)

type Handler struct {
	Service  *Service
	AuditSvc *auditlog.Service
}

func NewHandler(s *Service, auditSvc *auditlog.Service) *Handler {
	return &Handler{Service: s, AuditSvc: auditSvc}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Service.Register(req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	h.AuditSvc.LogAction(c.Request.Context(), &user.ID, &user.OrganizationID,
		auditlog.ActionUserRegistered,
		map[string]interface{}{"email": user.Email},
		middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.Service.Login(req)
	if err != nil {
		h.AuditSvc.LogAction(c.Request.Context(), nil, nil,
			auditlog.ActionUserLogin,
			map[string]interface{}{"email": req.Email},
			middleware.GetIPFromContext(c), "failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	h.AuditSvc.LogAction(c.Request.Context(), &tokens.User.ID, &tokens.User.OrganizationID,
		auditlog.ActionUserLogin, nil,
		middleware.GetIPFromContext(c), "success")

	c.JSON(http.StatusOK, tokens)
}

func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tokens, err := h.Service.Refresh(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Me returns the authenticated user's profile.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	user, err := h.Service.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}
