package model

import "time"

// ModuleCompletion is the durable progress record for one (user, module) pair.
// The store keeps at most one document per pair; repeated saves update it in
// place (last write wins).
type ModuleCompletion struct {
	UserID         string                 `json:"userId" bson:"userId"`
	ModuleID       string                 `json:"videoId" bson:"videoId"`
	Completed      bool                   `json:"completed" bson:"completed"`
	CompletedAt    *time.Time             `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	ConversationID string                 `json:"conversationId,omitempty" bson:"conversationId,omitempty"`
	Answers        map[string]string      `json:"answers" bson:"answers"`
	Metadata       map[string]interface{} `json:"metadata" bson:"metadata"`
	CreatedAt      time.Time              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt" bson:"updatedAt"`
}

// ProgressData is the caller-supplied part of a progress save.
type ProgressData struct {
	Completed      bool
	CompletedAt    *time.Time
	ConversationID string
	Answers        map[string]string
	Metadata       map[string]interface{}
}

// ProgressSummary is the per-module line in the all-progress listing.
type ProgressSummary struct {
	ModuleID    string     `json:"videoId" bson:"videoId"`
	Completed   bool       `json:"completed" bson:"completed"`
	CompletedAt *time.Time `json:"completedAt" bson:"completedAt"`
}
