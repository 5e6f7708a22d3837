package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-with-search/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes the message through the decision gate and either a direct or tool-augmented responder.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.DetailResp "Bad Request"
// @Failure     429 {object} response.DetailResp "Rate limit exceeded"
// @Failure     500 {object} response.DetailResp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		status, detail := h.mapError(err)
		response.Detail(c, status, detail)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// ClearHistory godoc
// @Summary     Clear a session's chat history
// @Description Drops all stored turns for the given session id.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body clearHistoryReq false "Session to clear"
// @Success     200 {object} clearHistoryResp
// @Router      /clear_history [POST]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processClearHistoryReq(c)
	output := h.uc.ClearHistory(ctx, req.toInput())

	c.JSON(http.StatusOK, h.newClearHistoryResp(output))
}
