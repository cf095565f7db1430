package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"onboarding-api/internal/model"
)

// ConversationCache is a read-through cache in front of the conversation
// store. Mongo stays the source of truth; entries here may expire early
// without changing what callers observe.
type ConversationCache interface {
	Set(ctx context.Context, conv *model.ActiveConversation) error
	Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error)
	Delete(ctx context.Context, conversationID string) error
}

type conversationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewConversationCache(client *redis.Client) ConversationCache {
	return &conversationCache{
		client: client,
		ttl:    1 * time.Hour,
	}
}

func (c *conversationCache) key(conversationID string) string {
	return fmt.Sprintf("conversation:%s", conversationID)
}

func (c *conversationCache) Set(ctx context.Context, conv *model.ActiveConversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(conv.ConversationID), data, c.ttl).Err()
}

func (c *conversationCache) Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error) {
	data, err := c.client.Get(ctx, c.key(conversationID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var conv model.ActiveConversation
	if err := json.Unmarshal([]byte(data), &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (c *conversationCache) Delete(ctx context.Context, conversationID string) error {
	return c.client.Del(ctx, c.key(conversationID)).Err()
}
