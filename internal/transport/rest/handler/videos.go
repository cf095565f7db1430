package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"onboarding-api/internal/model"
	"onboarding-api/internal/service"
)

// VideoHandler handles the direct completion and progress endpoints
type VideoHandler struct {
	progressSvc *service.ProgressService
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(progressSvc *service.ProgressService) *VideoHandler {
	return &VideoHandler{progressSvc: progressSvc}
}

// CompleteRequest is the request body for direct module completion
type CompleteRequest struct {
	UserID  string            `json:"userId"`
	Answers map[string]string `json:"answers"`
}

// Complete handles POST /api/videos/{videoId}/complete
func (h *VideoHandler) Complete(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["videoId"]

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing or invalid answers object")
		return
	}
	if req.Answers == nil {
		writeError(w, http.StatusBadRequest, "Missing or invalid answers object")
		return
	}

	record, err := h.progressSvc.CompleteModule(r.Context(), req.UserID, moduleID, req.Answers)
	if err != nil {
		var rejection *service.ValidationRejection
		if errors.As(err, &rejection) {
			writeJSON(w, http.StatusBadRequest, rejectionBody(rejection, ""))
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Video module completed successfully",
		"videoId":     moduleID,
		"completedAt": record.CompletedAt,
	})
}

// Progress handles GET /api/videos/{videoId}/progress
func (h *VideoHandler) Progress(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["videoId"]
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = service.DefaultUserID
	}

	record, err := h.progressSvc.GetProgress(r.Context(), userID, moduleID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	if record == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"videoId":   moduleID,
			"userId":    userID,
			"completed": false,
			"progress":  nil,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"videoId":     moduleID,
		"userId":      userID,
		"completed":   record.Completed,
		"completedAt": record.CompletedAt,
		"progress":    record,
	})
}

// AllProgress handles GET /api/videos/progress
func (h *VideoHandler) AllProgress(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = service.DefaultUserID
	}

	summaries, err := h.progressSvc.GetAllProgress(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	completed := 0
	for _, s := range summaries {
		if s.Completed {
			completed++
		}
	}
	if summaries == nil {
		summaries = []*model.ProgressSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId":         userID,
		"progress":       summaries,
		"totalCompleted": completed,
	})
}
