package types

// Category represents service categories
type Category string

const (
	CategoryScratchpad Category = "scratchpad"
	CategorySystem     Category = "system"
)

// Service represents a service definition
type Service struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Capabilities []string `json:"capabilities"`
	Tools        []Tool   `json:"tools"`
}

// Tool represents a service tool
type Tool struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
}

// Parameter represents a tool parameter
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Context provides execution context for services
type Context struct {
	SessionID *string `json:"session_id,omitempty"`
	UserID    *string `json:"user_id,omitempty"`
}

// Result represents a service execution result
type Result struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *string                `json:"error,omitempty"`
}

// Message returns the human-readable message of a result: the message
// data field on success, the error string on failure. This is the single
// string surfaced back to the agent runtime.
func (r *Result) Message() string {
	if r == nil {
		return ""
	}
	if !r.Success {
		if r.Error != nil {
			return *r.Error
		}
		return ""
	}
	if msg, ok := r.Data["message"].(string); ok {
		return msg
	}
	return ""
}

// ExecuteRequest is the payload for tool execution
type ExecuteRequest struct {
	ToolID    string                 `json:"tool_id" binding:"required"`
	Params    map[string]interface{} `json:"params"`
	SessionID *string                `json:"session_id,omitempty"`
}

// DiscoverRequest is the payload for service discovery
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}
