package model

import "time"

// ActiveConversation tracks a live agent dialogue. It exists from the
// conversation.started event until the matching completion is processed, and
// maps the opaque conversation id to exactly one (module, user) pair.
type ActiveConversation struct {
	ConversationID string    `json:"conversationId" bson:"conversationId"`
	ModuleID       string    `json:"videoId" bson:"videoId"`
	UserID         string    `json:"userId" bson:"userId"`
	StartedAt      time.Time `json:"startedAt" bson:"startedAt"`
}
