package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/walkout/backend/internal/application/checkout"
	"github.com/walkout/backend/internal/infrastructure/realtime"
	"go.uber.org/zap"
)

// CartHandler handles cart mutations, checkout, and the live cart
// subscription endpoint.
type CartHandler struct {
	BaseHandler
	cartService     *checkout.CartService
	checkoutService *checkout.CheckoutService
	registry        *realtime.Registry
	upgrader        websocket.Upgrader
	logger          *zap.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	cartService *checkout.CartService,
	checkoutService *checkout.CheckoutService,
	registry *realtime.Registry,
	logger *zap.Logger,
) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		registry:        registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin enforcement is left to the CORS layer; the socket
			// carries no credentials.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// AddItemRequest is the request body for POST /sessions/:id/cart/items.
// Quantity defaults to 1 when omitted.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  *int   `json:"quantity"`
}

// AddItem adds a product to the session's cart and returns the updated
// cart snapshot
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	snapshot, err := h.cartService.AddItem(c.Request.Context(), checkout.AddItemInput{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// RemoveItem decrements a product's quantity in the cart by one and returns
// the updated cart snapshot
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	snapshot, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// Checkout charges the cart total and returns the receipt
func (h *CartHandler) Checkout(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	receipt, err := h.checkoutService.Checkout(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// Receipt returns the receipt of a completed session
func (h *CartHandler) Receipt(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	receipt, err := h.checkoutService.Receipt(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receipt)
}

// ServeCart upgrades the connection and registers it as the session's live
// cart subscriber. At most one subscriber per session: a newer connection
// replaces this one, after which this connection receives nothing further.
// Subscribing does not push the current cart; only updates published after
// the subscription are delivered.
func (h *CartHandler) ServeCart(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID")
		return
	}

	// Reject unknown sessions before upgrading so the client gets a
	// proper HTTP status instead of a broken socket.
	if _, err := h.cartService.Snapshot(c.Request.Context(), sessionID); err != nil {
		h.HandleError(c, err)
		return
	}

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written its own error response
		h.logger.Warn("WebSocket upgrade failed",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
		return
	}

	conn := realtime.NewConn(ws)
	h.registry.Subscribe(sessionID, conn)

	defer func() {
		h.registry.Unsubscribe(sessionID, conn)
		_ = conn.Close()
	}()

	h.logger.Info("Cart subscriber connected", zap.String("session_id", sessionID.String()))
	conn.ReadUntilClosed()
	h.logger.Info("Cart subscriber disconnected", zap.String("session_id", sessionID.String()))
}

// RegisterRoutes registers cart, checkout, and subscription routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("/:id/cart/items", h.AddItem)
		sessions.DELETE("/:id/cart/items/:productId", h.RemoveItem)
		sessions.POST("/:id/checkout", h.Checkout)
		sessions.GET("/:id/receipt", h.Receipt)
	}

	rg.GET("/ws/cart/:id", h.ServeCart)
}
