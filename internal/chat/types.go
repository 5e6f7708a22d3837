package chat

import "time"

// ChatInput is one inbound user message.
type ChatInput struct {
	SessionID string // empty means "start a new session"
	Message   string
}

// ChatOutput is the orchestrator's result for one message.
type ChatOutput struct {
	Message     string
	SessionID   string
	CurrentDate time.Time
	UsedTools   bool
}

// ClearHistoryInput identifies the session to clear.
type ClearHistoryInput struct {
	SessionID string
}

// ClearHistoryOutput carries the user-facing confirmation.
type ClearHistoryOutput struct {
	Message string
}
