package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"onboarding-api/internal/catalog"
	"onboarding-api/internal/model"
	"onboarding-api/internal/service"
)

// QuizHandler serves catalog questions and single-answer validation
type QuizHandler struct {
	catalog       *catalog.Catalog
	validationSvc *service.ValidationService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(cat *catalog.Catalog, validationSvc *service.ValidationService) *QuizHandler {
	return &QuizHandler{catalog: cat, validationSvc: validationSvc}
}

// Questions handles GET /api/quiz/{videoId}/questions. Canonical answers and
// keywords never leave the server.
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["videoId"]

	questions := h.catalog.QuestionsForModule(moduleID)
	public := make([]model.PublicQuestion, 0, len(questions))
	for i := range questions {
		public = append(public, questions[i].Public())
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"videoId":   moduleID,
		"questions": public,
		"total":     len(public),
	})
}

// ValidateRequest is the request body for single-answer validation
type ValidateRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// Validate handles POST /api/quiz/{videoId}/validate
func (h *QuizHandler) Validate(w http.ResponseWriter, r *http.Request) {
	moduleID := mux.Vars(r)["videoId"]

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID == "" {
		writeError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	result, err := h.validationSvc.ValidateAnswer(moduleID, req.QuestionID, req.Answer)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error":      "Question not found",
				"videoId":    moduleID,
				"questionId": req.QuestionID,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"videoId":    moduleID,
		"questionId": result.QuestionID,
		"isCorrect":  result.IsCorrect,
		"answered":   result.Answered,
	})
}
