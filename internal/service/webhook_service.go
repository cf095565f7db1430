package service

import (
	"context"
	"log"
	"time"

	"onboarding-api/internal/catalog"
	"onboarding-api/internal/model"
)

// WebhookService dispatches lifecycle events from the agent platform. The
// event stream is the source of truth for conversation state: started events
// open a tracked conversation, completed events close it after the answers
// pass the appropriate gate. Unknown event types are acknowledged untouched
// so new platform events never break the webhook.
type WebhookService struct {
	tracker   *ConversationService
	progress  *ProgressService
	validator *ValidationService
	catalog   *catalog.Catalog
}

func NewWebhookService(tracker *ConversationService, progress *ProgressService, validator *ValidationService, cat *catalog.Catalog) *WebhookService {
	return &WebhookService{
		tracker:   tracker,
		progress:  progress,
		validator: validator,
		catalog:   cat,
	}
}

// HandleEvent routes one inbound event. Client rejections come back as
// ErrModuleNotFound or *ValidationRejection; anything else is a server-side
// failure.
func (s *WebhookService) HandleEvent(ctx context.Context, p *model.WebhookPayload) (*model.WebhookAck, error) {
	switch p.Event {
	case model.EventConversationStarted:
		return s.handleStarted(ctx, p), nil

	case model.EventConversationCompleted:
		return s.handleCompleted(ctx, p)

	case model.EventSubagentCompleted:
		log.Printf("webhook: subagent completed conversation=%s video=%s", p.ConversationID, p.ModuleID)
		return &model.WebhookAck{
			Success:        true,
			Message:        "Sub-agent completed",
			ConversationID: p.ConversationID,
		}, nil

	default:
		log.Printf("webhook: unknown event %q", p.Event)
		return &model.WebhookAck{Success: true, Message: "Event received"}, nil
	}
}

// handleStarted tracks the new conversation. Tracking is a side-effect hint,
// not a correctness gate, so a failed save still acknowledges the event - the
// platform must never see a retryable error for it.
func (s *WebhookService) handleStarted(ctx context.Context, p *model.WebhookPayload) *model.WebhookAck {
	if p.ConversationID == "" || p.ModuleID == "" {
		log.Printf("webhook: conversation.started missing conversation_id or video_id")
	} else {
		userID := p.UserID
		if userID == "" {
			userID = DefaultUserID
		}
		if _, err := s.tracker.Start(ctx, p.ConversationID, p.ModuleID, userID); err != nil {
			log.Printf("webhook: track conversation %s: %v", p.ConversationID, err)
		}
	}

	return &model.WebhookAck{
		Success:        true,
		Message:        "Conversation started",
		ConversationID: p.ConversationID,
	}
}

// handleCompleted resolves the module and user (explicit fields win, tracked
// conversation state is the fallback), runs the validator the module calls
// for, then records completion and drops the tracked conversation.
func (s *WebhookService) handleCompleted(ctx context.Context, p *model.WebhookPayload) (*model.WebhookAck, error) {
	var conv *model.ActiveConversation
	if p.ConversationID != "" {
		var err error
		conv, err = s.tracker.Get(ctx, p.ConversationID)
		if err != nil {
			return nil, err
		}
	}

	moduleID := p.ModuleID
	if moduleID == "" && conv != nil {
		moduleID = conv.ModuleID
	}
	if moduleID == "" {
		return nil, ErrModuleNotFound
	}

	userID := p.UserID
	if userID == "" && conv != nil {
		userID = conv.UserID
	}
	if userID == "" {
		userID = DefaultUserID
	}

	// No answers at all means an agent-only flow the event itself vouches
	// for; the record is saved as-is.
	if p.Answers != nil {
		if err := s.validateAnswers(moduleID, p.Answers, p.Metadata); err != nil {
			return nil, err
		}
	}

	answers := p.Answers
	if answers == nil {
		answers = map[string]string{}
	}
	metadata := p.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	record, err := s.progress.MarkCompleted(ctx, userID, moduleID, p.ConversationID, answers, metadata)
	if err != nil {
		return nil, err
	}

	if p.ConversationID != "" {
		if err := s.tracker.End(ctx, p.ConversationID); err != nil {
			return nil, err
		}
	}

	log.Printf("webhook: module %s completed for user %s", moduleID, userID)

	ack := &model.WebhookAck{
		Success:        true,
		Message:        "Video module completed successfully",
		ModuleID:       moduleID,
		UserID:         userID,
		ConversationID: p.ConversationID,
	}
	if record.CompletedAt != nil {
		ack.CompletedAt = record.CompletedAt.Format(time.RFC3339)
	}
	return ack, nil
}

// validateAnswers picks the gate: exact catalog checking when the module has
// registered questions, hybrid heuristics when it does not.
func (s *WebhookService) validateAnswers(moduleID string, answers map[string]string, metadata map[string]interface{}) error {
	if s.catalog.HasQuestions(moduleID) {
		validation := s.validator.ValidateAllAnswers(moduleID, answers)
		if !validation.AllAnswered {
			return &ValidationRejection{
				Message:   "Not all questions have been answered",
				Aggregate: validation,
			}
		}
		if !validation.AllCorrect {
			return &ValidationRejection{
				Message:   "Not all answers are correct. 100% correctness required.",
				Aggregate: validation,
			}
		}
		return nil
	}

	hybrid := s.validator.ValidateAnswersHybrid(answers, metadata)
	if !hybrid.Passed {
		return &ValidationRejection{Message: hybrid.Reason, Hybrid: hybrid}
	}
	return nil
}
