package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/walkout/backend/internal/application/identity"
)

// UserHandler handles requests about the authenticated user
type UserHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *identity.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// UpdatePaymentTokenRequest is the request body for PATCH /users/me/payment-token
type UpdatePaymentTokenRequest struct {
	PaymentToken string `json:"payment_token" binding:"required"`
}

// Me returns the authenticated user's profile
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// UpdatePaymentToken attaches or replaces the stored payment token
func (h *UserHandler) UpdatePaymentToken(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdatePaymentTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.UpdatePaymentToken(c.Request.Context(), userID, req.PaymentToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/me", h.Me)
		users.PATCH("/me/payment-token", h.UpdatePaymentToken)
	}
}
