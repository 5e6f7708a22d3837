package chat

import "context"

// UseCase is the chat orchestration contract consumed by the delivery layer.
type UseCase interface {
	// Chat handles one user message for a session: it decides whether the
	// query needs live data, dispatches to the matching responder, and
	// returns the normalized answer.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ClearHistory drops the session's conversation memory. Unknown or
	// missing session ids are a no-op success.
	ClearHistory(ctx context.Context, input ClearHistoryInput) ClearHistoryOutput
}
