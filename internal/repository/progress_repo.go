package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"onboarding-api/internal/model"
)

type ProgressRepo interface {
	Upsert(ctx context.Context, userID, moduleID string, data model.ProgressData) (*model.ModuleCompletion, error)
	GetOne(ctx context.Context, userID, moduleID string) (*model.ModuleCompletion, error)
	GetAllForUser(ctx context.Context, userID string) ([]*model.ProgressSummary, error)
}

type progressRepo struct {
	collection *mongo.Collection
}

func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("user_progress"),
	}
}

// Upsert atomically inserts or replaces the record for (userID, moduleID) and
// returns the post-write document. The single FindOneAndUpdate keeps
// concurrent completion attempts race-free: last writer wins, never two rows.
func (r *progressRepo) Upsert(ctx context.Context, userID, moduleID string, data model.ProgressData) (*model.ModuleCompletion, error) {
	answers := data.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	metadata := data.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	now := time.Now().UTC()
	filter := bson.M{"userId": userID, "videoId": moduleID}
	update := bson.M{
		"$set": bson.M{
			"completed":      data.Completed,
			"completedAt":    data.CompletedAt,
			"conversationId": data.ConversationID,
			"answers":        answers,
			"metadata":       metadata,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"videoId":   moduleID,
			"createdAt": now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record model.ModuleCompletion
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *progressRepo) GetOne(ctx context.Context, userID, moduleID string) (*model.ModuleCompletion, error) {
	var record model.ModuleCompletion
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "videoId": moduleID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// GetAllForUser lists a user's records in their original creation order.
func (r *progressRepo) GetAllForUser(ctx context.Context, userID string) ([]*model.ProgressSummary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []*model.ProgressSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
