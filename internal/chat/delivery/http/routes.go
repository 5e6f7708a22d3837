package http

import (
	"github.com/gin-gonic/gin"

	"chat-with-search/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only /chat is rate limited; /clear_history is always allowed.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
	r.POST("/clear_history", h.ClearHistory)
}
