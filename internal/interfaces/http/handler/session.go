package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/walkout/backend/internal/application/checkout"
)

// SessionHandler handles shopping session lifecycle HTTP requests
type SessionHandler struct {
	BaseHandler
	sessionService *checkout.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *checkout.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Start opens a new active session for the authenticated user
func (h *SessionHandler) Start(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	session, err := h.sessionService.StartSession(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, session)
}

// Active returns the authenticated user's current active session
func (h *SessionHandler) Active(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	session, err := h.sessionService.ActiveSession(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, session)
}

// RegisterRoutes registers all session lifecycle routes
func (h *SessionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("/start", h.Start)
		sessions.GET("/active", h.Active)
	}
}
