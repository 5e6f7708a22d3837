package usecase

// Prompt building blocks
const (
	// PromptUserInputPrefix keeps the prompt shape stable for the model
	// regardless of the raw message content.
	PromptUserInputPrefix = "User input: "

	// PromptDecisionTemplate asks the model the binary live-data question.
	// Args: current date (YYYY-MM-DD), prefixed user input.
	PromptDecisionTemplate = "Given the following user input, decide if you need to use external tools to answer accurately with the most up-to-date information. Respond with 'Yes' if there's any chance that current data might improve the answer, or 'No' if you're absolutely certain your knowledge is sufficient and current. Current date: %s. %s"

	// PromptSystemAgent is the fixed system instruction for the
	// tool-augmented path.
	PromptSystemAgent = "You are a helpful assistant. Use the provided tools when necessary to answer questions accurately. Your answers should be concise and to the point. You should respond with 'I don't know' if you are unsure about the answer."
)

// Decision parsing
const (
	// DecisionYes is the only token that routes to the tool path; any
	// other model output falls back to the direct path.
	DecisionYes = "yes"
)

// Defaults for orchestration knobs when config leaves them unset.
const (
	DefaultMaxAgentSteps = 5
	DefaultTemperature   = 0.3
	DefaultMaxTokens     = 500
)

// User-facing messages
const (
	MsgMaxStepsExceeded  = "I wasn't able to finish reasoning about that within the allowed number of steps. Please try rephrasing or narrowing the question."
	MsgNothingToClear    = "No session ID provided. Nothing to clear."
	MsgHistoryClearedFmt = "Chat history cleared for session %s"
)

// DateFormat is the wire format for the decision prompt's current date.
const DateFormat = "2006-01-02"
