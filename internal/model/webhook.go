package model

// EventType is the lifecycle event name sent by the agent platform.
type EventType string

const (
	EventConversationStarted   EventType = "conversation.started"
	EventConversationCompleted EventType = "conversation.completed"
	EventSubagentCompleted     EventType = "subagent.completed"
)

// WebhookPayload is the inbound event shape from the agent platform. Every
// field except Event is optional; the dispatcher reconciles missing ids from
// tracked conversation state.
type WebhookPayload struct {
	Event          EventType              `json:"event"`
	ConversationID string                 `json:"conversation_id,omitempty"`
	ModuleID       string                 `json:"video_id,omitempty"`
	UserID         string                 `json:"user_id,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Answers        map[string]string      `json:"answers,omitempty"`
}

// WebhookAck is the success body returned to the event source. The field mix
// (camelCase ids next to conversation_id) matches what integrations already
// consume.
type WebhookAck struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	ModuleID       string `json:"videoId,omitempty"`
	UserID         string `json:"userId,omitempty"`
	CompletedAt    string `json:"completedAt,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}
