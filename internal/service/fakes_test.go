package service

import (
	"context"
	"time"

	"onboarding-api/internal/model"
)

// In-memory stand-ins for the Mongo repositories and the Redis cache.

type fakeConversationRepo struct {
	conversations map[string]*model.ActiveConversation
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{conversations: map[string]*model.ActiveConversation{}}
}

func (r *fakeConversationRepo) Upsert(ctx context.Context, conversationID, moduleID, userID string) (*model.ActiveConversation, error) {
	conv := &model.ActiveConversation{
		ConversationID: conversationID,
		ModuleID:       moduleID,
		UserID:         userID,
		StartedAt:      time.Now().UTC(),
	}
	r.conversations[conversationID] = conv
	return conv, nil
}

func (r *fakeConversationRepo) Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error) {
	conv, ok := r.conversations[conversationID]
	if !ok {
		return nil, nil
	}
	copied := *conv
	return &copied, nil
}

func (r *fakeConversationRepo) Delete(ctx context.Context, conversationID string) error {
	delete(r.conversations, conversationID)
	return nil
}

type fakeConversationCache struct {
	entries map[string]*model.ActiveConversation
}

func newFakeConversationCache() *fakeConversationCache {
	return &fakeConversationCache{entries: map[string]*model.ActiveConversation{}}
}

func (c *fakeConversationCache) Set(ctx context.Context, conv *model.ActiveConversation) error {
	copied := *conv
	c.entries[conv.ConversationID] = &copied
	return nil
}

func (c *fakeConversationCache) Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error) {
	conv, ok := c.entries[conversationID]
	if !ok {
		return nil, nil
	}
	copied := *conv
	return &copied, nil
}

func (c *fakeConversationCache) Delete(ctx context.Context, conversationID string) error {
	delete(c.entries, conversationID)
	return nil
}

type fakeProgressRepo struct {
	records map[string]*model.ModuleCompletion
	order   []string
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: map[string]*model.ModuleCompletion{}}
}

func progressKey(userID, moduleID string) string {
	return userID + "/" + moduleID
}

func (r *fakeProgressRepo) Upsert(ctx context.Context, userID, moduleID string, data model.ProgressData) (*model.ModuleCompletion, error) {
	now := time.Now().UTC()
	key := progressKey(userID, moduleID)

	record, ok := r.records[key]
	if !ok {
		record = &model.ModuleCompletion{UserID: userID, ModuleID: moduleID, CreatedAt: now}
		r.records[key] = record
		r.order = append(r.order, key)
	}
	record.Completed = data.Completed
	record.CompletedAt = data.CompletedAt
	record.ConversationID = data.ConversationID
	record.Answers = data.Answers
	record.Metadata = data.Metadata
	record.UpdatedAt = now

	copied := *record
	return &copied, nil
}

func (r *fakeProgressRepo) GetOne(ctx context.Context, userID, moduleID string) (*model.ModuleCompletion, error) {
	record, ok := r.records[progressKey(userID, moduleID)]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (r *fakeProgressRepo) GetAllForUser(ctx context.Context, userID string) ([]*model.ProgressSummary, error) {
	var out []*model.ProgressSummary
	for _, key := range r.order {
		record := r.records[key]
		if record.UserID != userID {
			continue
		}
		out = append(out, &model.ProgressSummary{
			ModuleID:    record.ModuleID,
			Completed:   record.Completed,
			CompletedAt: record.CompletedAt,
		})
	}
	return out, nil
}
