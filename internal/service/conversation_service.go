package service

import (
	"context"
	"log"

	"onboarding-api/internal/cache"
	"onboarding-api/internal/model"
	"onboarding-api/internal/repository"
)

// ConversationService tracks live agent conversations. Mongo is the durable
// mapping; Redis fronts it so webhook completions resolve ids without a
// database round trip. Cache failures are logged and absorbed - the store
// alone decides what exists.
type ConversationService struct {
	repo  repository.ConversationRepo
	cache cache.ConversationCache
}

func NewConversationService(repo repository.ConversationRepo, cache cache.ConversationCache) *ConversationService {
	return &ConversationService{repo: repo, cache: cache}
}

// Start records a conversation as active. Reusing an id overwrites the prior
// (module, user) mapping and resets the start time.
func (s *ConversationService) Start(ctx context.Context, conversationID, moduleID, userID string) (*model.ActiveConversation, error) {
	conv, err := s.repo.Upsert(ctx, conversationID, moduleID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, conv); err != nil {
		log.Printf("conversation cache set %s: %v", conversationID, err)
	}
	return conv, nil
}

// Get returns the tracked conversation, or nil when the id is unknown.
func (s *ConversationService) Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error) {
	conv, err := s.cache.Get(ctx, conversationID)
	if err != nil {
		log.Printf("conversation cache get %s: %v", conversationID, err)
	} else if conv != nil {
		return conv, nil
	}

	conv, err = s.repo.Get(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		if err := s.cache.Set(ctx, conv); err != nil {
			log.Printf("conversation cache set %s: %v", conversationID, err)
		}
	}
	return conv, nil
}

// End removes the tracked conversation. Ending an id that was never started
// (or was already ended) is a no-op, not an error.
func (s *ConversationService) End(ctx context.Context, conversationID string) error {
	if err := s.cache.Delete(ctx, conversationID); err != nil {
		log.Printf("conversation cache delete %s: %v", conversationID, err)
	}
	return s.repo.Delete(ctx, conversationID)
}
