package service

import (
	"context"
	"fmt"
	"time"

	"onboarding-api/internal/event"
	"onboarding-api/internal/model"
	"onboarding-api/internal/repository"
)

// DefaultUserID stands in when a caller supplies no user identity. A known
// limitation: nothing verifies who the caller actually is.
const DefaultUserID = "default"

// ProgressService owns the durable completion records and the direct
// completion gate.
type ProgressService struct {
	repo      repository.ProgressRepo
	validator *ValidationService
	publisher *event.Publisher
}

func NewProgressService(repo repository.ProgressRepo, validator *ValidationService, publisher *event.Publisher) *ProgressService {
	return &ProgressService{repo: repo, validator: validator, publisher: publisher}
}

// CompleteModule is the direct completion path: every catalog question must be
// answered and correct before anything is persisted. Returns a
// ValidationRejection when the gate fails.
func (s *ProgressService) CompleteModule(ctx context.Context, userID, moduleID string, answers map[string]string) (*model.ModuleCompletion, error) {
	if userID == "" {
		userID = DefaultUserID
	}

	validation := s.validator.ValidateAllAnswers(moduleID, answers)
	if !validation.AllAnswered {
		return nil, &ValidationRejection{
			Message:   "Not all questions have been answered",
			Aggregate: validation,
		}
	}
	if !validation.AllCorrect {
		return nil, &ValidationRejection{
			Message:   "Not all answers are correct. 100% correctness required.",
			Aggregate: validation,
		}
	}

	return s.MarkCompleted(ctx, userID, moduleID, "", answers, map[string]interface{}{})
}

// MarkCompleted upserts the completed record for (userID, moduleID) and emits
// the completion event. Validation is the caller's responsibility; the upsert
// itself is idempotent, so repeated completions keep a single record.
func (s *ProgressService) MarkCompleted(ctx context.Context, userID, moduleID, conversationID string, answers map[string]string, metadata map[string]interface{}) (*model.ModuleCompletion, error) {
	now := time.Now().UTC()
	record, err := s.repo.Upsert(ctx, userID, moduleID, model.ProgressData{
		Completed:      true,
		CompletedAt:    &now,
		ConversationID: conversationID,
		Answers:        answers,
		Metadata:       metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	s.publisher.Publish("module.completed", map[string]interface{}{
		"userId":         record.UserID,
		"videoId":        record.ModuleID,
		"conversationId": record.ConversationID,
		"completedAt":    record.CompletedAt,
	})
	return record, nil
}

// GetProgress returns the record for one module, or nil when the user has
// never attempted it.
func (s *ProgressService) GetProgress(ctx context.Context, userID, moduleID string) (*model.ModuleCompletion, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.repo.GetOne(ctx, userID, moduleID)
}

// GetAllProgress lists the user's records in creation order.
func (s *ProgressService) GetAllProgress(ctx context.Context, userID string) ([]*model.ProgressSummary, error) {
	if userID == "" {
		userID = DefaultUserID
	}
	return s.repo.GetAllForUser(ctx, userID)
}
