package tools

// ResultType tags the three shapes a search invocation can produce.
type ResultType string

const (
	TypeAnswer  ResultType = "answer"
	TypeResults ResultType = "search_results"
	TypeError   ResultType = "error"
)

// SearchResult is the normalized outcome of one search invocation.
// Exactly one of Content/Items is meaningful depending on Type.
type SearchResult struct {
	Type    ResultType
	Content string // direct answer or error message
	Items   []SearchItem
}

// SearchItem is a single organic result reduced to what the model needs.
type SearchItem struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// ToPayload converts the result to the map fed back to the LLM as a
// tool observation.
func (r SearchResult) ToPayload() map[string]interface{} {
	payload := map[string]interface{}{
		"type": string(r.Type),
	}
	if r.Type == TypeResults {
		payload["content"] = r.Items
	} else {
		payload["content"] = r.Content
	}
	return payload
}
