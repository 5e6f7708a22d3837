package http

import (
	"chat-with-search/internal/chat"
	"chat-with-search/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

type clearHistoryReq struct {
	SessionID string `json:"session_id"`
}

func (r clearHistoryReq) toInput() chat.ClearHistoryInput {
	return chat.ClearHistoryInput{SessionID: r.SessionID}
}

// --- Response DTOs ---

type chatResp struct {
	Message     string        `json:"message"`
	SessionID   string        `json:"session_id"`
	CurrentDate response.Date `json:"current_date"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Message:     out.Message,
		SessionID:   out.SessionID,
		CurrentDate: response.Date(out.CurrentDate),
	}
}

type clearHistoryResp struct {
	Message string `json:"message"`
}

func (h *handler) newClearHistoryResp(out chat.ClearHistoryOutput) clearHistoryResp {
	return clearHistoryResp{Message: out.Message}
}
