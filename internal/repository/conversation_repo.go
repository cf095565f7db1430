package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"onboarding-api/internal/model"
)

type ConversationRepo interface {
	Upsert(ctx context.Context, conversationID, moduleID, userID string) (*model.ActiveConversation, error)
	Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error)
	Delete(ctx context.Context, conversationID string) error
}

type conversationRepo struct {
	collection *mongo.Collection
}

func NewConversationRepo(db *mongo.Database) ConversationRepo {
	return &conversationRepo{
		collection: db.Collection("active_conversations"),
	}
}

// Upsert records a started conversation. A reused id overwrites the prior
// mapping and resets the start time (last start wins).
func (r *conversationRepo) Upsert(ctx context.Context, conversationID, moduleID, userID string) (*model.ActiveConversation, error) {
	filter := bson.M{"conversationId": conversationID}
	update := bson.M{
		"$set": bson.M{
			"conversationId": conversationID,
			"videoId":        moduleID,
			"userId":         userID,
			"startedAt":      time.Now().UTC(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var conv model.ActiveConversation
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepo) Get(ctx context.Context, conversationID string) (*model.ActiveConversation, error) {
	var conv model.ActiveConversation
	err := r.collection.FindOne(ctx, bson.M{"conversationId": conversationID}).Decode(&conv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// Delete removes a conversation. Deleting an unknown id is a no-op.
func (r *conversationRepo) Delete(ctx context.Context, conversationID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"conversationId": conversationID})
	return err
}
