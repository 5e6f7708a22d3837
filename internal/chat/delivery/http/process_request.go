package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processClearHistoryReq binds the clear-history request body. An empty
// body is acceptable: it means "nothing to clear".
func (h *handler) processClearHistoryReq(c *gin.Context) clearHistoryReq {
	var req clearHistoryReq
	// Bind errors degrade to an empty session id on purpose.
	_ = c.ShouldBindJSON(&req)
	return req
}
