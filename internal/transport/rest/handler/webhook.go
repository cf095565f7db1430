package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"onboarding-api/internal/model"
	"onboarding-api/internal/service"
)

// WebhookHandler handles the agent platform integration endpoints
type WebhookHandler struct {
	webhookSvc *service.WebhookService
	tracker    *service.ConversationService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookSvc *service.WebhookService, tracker *service.ConversationService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc, tracker: tracker}
}

// Webhook handles POST /api/elevenlabs/webhook
func (h *WebhookHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var payload model.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log.Printf("webhook received: event=%s conversation=%s video=%s user=%s",
		payload.Event, payload.ConversationID, payload.ModuleID, payload.UserID)

	ack, err := h.webhookSvc.HandleEvent(r.Context(), &payload)
	if err != nil {
		h.writeEventError(w, &payload, err)
		return
	}
	writeJSON(w, http.StatusOK, ack)
}

func (h *WebhookHandler) writeEventError(w http.ResponseWriter, p *model.WebhookPayload, err error) {
	var rejection *service.ValidationRejection
	switch {
	case errors.Is(err, service.ErrModuleNotFound):
		body := map[string]interface{}{"error": "Video ID not found"}
		if p.ConversationID != "" {
			body["conversation_id"] = p.ConversationID
		}
		writeJSON(w, http.StatusBadRequest, body)

	case errors.As(err, &rejection):
		writeJSON(w, http.StatusBadRequest, rejectionBody(rejection, p.ConversationID))

	default:
		log.Printf("webhook: %s failed: %v", p.Event, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}

// ConversationStatus handles GET /api/elevenlabs/conversation/{conversationId}/status
func (h *WebhookHandler) ConversationStatus(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	conv, err := h.tracker.Get(r.Context(), conversationID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if conv == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error":          "Conversation not found",
			"conversationId": conversationID,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"conversationId": conv.ConversationID,
		"videoId":        conv.ModuleID,
		"userId":         conv.UserID,
		"startedAt":      conv.StartedAt,
	})
}

// StartConversationRequest is the request body for initializing a conversation
type StartConversationRequest struct {
	ModuleID       string `json:"videoId"`
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
}

// StartConversation handles POST /api/elevenlabs/start-conversation
func (h *WebhookHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	var req StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ModuleID == "" {
		writeError(w, http.StatusBadRequest, "videoId is required")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = service.DefaultUserID
	}
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = "conv-" + uuid.New().String()
	}

	if _, err := h.tracker.Start(r.Context(), conversationID, req.ModuleID, userID); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"conversationId": conversationID,
		"videoId":        req.ModuleID,
		"userId":         userID,
	})
}

// rejectionBody flattens a validation rejection into the response shape the
// frontend already consumes: the error message plus the validator's fields at
// the top level.
func rejectionBody(rej *service.ValidationRejection, conversationID string) map[string]interface{} {
	body := map[string]interface{}{"error": rej.Message}
	if conversationID != "" {
		body["conversation_id"] = conversationID
	}
	if rej.Aggregate != nil {
		body["allCorrect"] = rej.Aggregate.AllCorrect
		body["allAnswered"] = rej.Aggregate.AllAnswered
		body["results"] = rej.Aggregate.Results
	}
	if rej.Hybrid != nil {
		body["passed"] = rej.Hybrid.Passed
		body["reason"] = rej.Hybrid.Reason
		body["questionsAnswered"] = rej.Hybrid.QuestionsAnswered
		body["minQuestionsRequired"] = rej.Hybrid.MinQuestionsRequired
		if rej.Hybrid.AgentValidationPassed != nil {
			body["agentValidationPassed"] = *rej.Hybrid.AgentValidationPassed
		}
		body["details"] = rej.Hybrid.Details
	}
	return body
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
