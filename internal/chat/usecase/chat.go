package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"chat-with-search/internal/chat"
	"chat-with-search/internal/model"
)

// Chat handles one user message: resolve session memory, run the
// decision gate, dispatch to a responder, normalize the answer, and
// record the turn pair.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	mem := uc.sessions.GetOrCreate(sessionID)
	// Same-session requests are serialized for the whole orchestration;
	// other sessions proceed in parallel.
	release := mem.Acquire()
	defer release()

	prompt := PromptUserInputPrefix + input.Message
	now := time.Now()

	uc.l.Infof(ctx, "Chat: session=%s message_len=%d", sessionID, len(input.Message))

	needsLiveData, err := uc.decide(ctx, prompt, now)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	var answer string
	if needsLiveData {
		answer, err = uc.respondWithTools(ctx, prompt, mem)
	} else {
		answer, err = uc.respondDirect(ctx, prompt)
	}
	if err != nil {
		return chat.ChatOutput{}, err
	}

	// Both paths record the turn pair so history does not depend on
	// which responder ran.
	mem.Append(model.RoleUser, input.Message)
	mem.Append(model.RoleAssistant, answer)

	uc.l.Infof(ctx, "Chat: session=%s used_tools=%t answer_len=%d", sessionID, needsLiveData, len(answer))

	return chat.ChatOutput{
		Message:     answer,
		SessionID:   sessionID,
		CurrentDate: now,
		UsedTools:   needsLiveData,
	}, nil
}

// ClearHistory drops the session's conversation memory.
func (uc *implUseCase) ClearHistory(ctx context.Context, input chat.ClearHistoryInput) chat.ClearHistoryOutput {
	if input.SessionID == "" {
		uc.l.Info(ctx, "ClearHistory: no session id provided")
		return chat.ClearHistoryOutput{Message: MsgNothingToClear}
	}

	uc.sessions.Clear(input.SessionID)
	uc.l.Infof(ctx, "ClearHistory: cleared session %s", input.SessionID)
	return chat.ClearHistoryOutput{Message: fmt.Sprintf(MsgHistoryClearedFmt, input.SessionID)}
}
