package http

import (
	"net/http"

	"chat-with-search/internal/chat"
)

// mapError translates domain/use-case errors into an HTTP status and a
// flat detail string.
func (h *handler) mapError(err error) (int, string) {
	switch err {
	case chat.ErrEmptyMessage:
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
