package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"onboarding-api/internal/catalog"
	"onboarding-api/internal/model"
)

const (
	// defaultMinQuestions is the hybrid volume threshold when the event
	// metadata does not carry min_questions.
	defaultMinQuestions = 2

	// minAnswerLength is the trimmed length below which a hybrid answer
	// does not count as a quality answer.
	minAnswerLength = 5
)

// ValidationService scores submitted answers. Catalog-backed modules get
// exact per-question checking; modules without a catalog fall back to the
// hybrid heuristics. All methods are side-effect-free.
type ValidationService struct {
	catalog *catalog.Catalog
}

func NewValidationService(cat *catalog.Catalog) *ValidationService {
	return &ValidationService{catalog: cat}
}

// CheckAnswer reports whether an answer is acceptable for a question: after
// case-folding and trimming it must contain the canonical answer phrase, or
// at least one keyword. Deliberately permissive substring matching, because
// answers arrive as free-form speech transcripts.
func CheckAnswer(answer string, question *model.Question) bool {
	if answer == "" || question == nil {
		return false
	}

	lowerAnswer := strings.ToLower(strings.TrimSpace(answer))
	if strings.Contains(lowerAnswer, strings.ToLower(question.CorrectAnswer)) {
		return true
	}

	for _, keyword := range question.Keywords {
		if strings.Contains(lowerAnswer, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// ValidateAnswer checks a single answer against one catalog question.
func (s *ValidationService) ValidateAnswer(moduleID, questionID, answer string) (*model.ValidationResult, error) {
	for _, q := range s.catalog.QuestionsForModule(moduleID) {
		if q.ID == questionID {
			return &model.ValidationResult{
				QuestionID: q.ID,
				IsCorrect:  CheckAnswer(answer, &q),
				Answered:   answer != "",
			}, nil
		}
	}
	return nil, ErrQuestionNotFound
}

// ValidateAllAnswers checks every catalog question of a module against the
// submitted answers map. A module with no catalog questions passes vacuously
// (allAnswered and allCorrect both true over an empty result list).
func (s *ValidationService) ValidateAllAnswers(moduleID string, answers map[string]string) *model.AggregateValidation {
	questions := s.catalog.QuestionsForModule(moduleID)

	results := make([]model.ValidationResult, 0, len(questions))
	allCorrect := true
	allAnswered := true
	for _, q := range questions {
		answer := answers[q.ID]
		answered := answer != ""
		correct := answered && CheckAnswer(answer, &q)

		results = append(results, model.ValidationResult{
			QuestionID: q.ID,
			IsCorrect:  correct,
			Answered:   answered,
		})
		allCorrect = allCorrect && correct
		allAnswered = allAnswered && answered
	}

	return &model.AggregateValidation{
		AllCorrect:  allCorrect && allAnswered,
		AllAnswered: allAnswered,
		Results:     results,
	}
}

// ValidateAnswersHybrid judges answers by volume and quality heuristics plus
// the upstream agent's own verdict. Checks run in order and the first failure
// wins. An explicit validation_passed=false from the agent is authoritative;
// an absent flag is treated as passing, and that asymmetry is intentional.
func (s *ValidationService) ValidateAnswersHybrid(answers map[string]string, metadata map[string]interface{}) *model.HybridValidationResult {
	answerCount := len(answers)
	minQuestions := metadataInt(metadata, "min_questions", defaultMinQuestions)

	var agentPassed *bool
	if v, ok := metadata["validation_passed"].(bool); ok {
		agentPassed = &v
	}

	if answerCount < minQuestions {
		return &model.HybridValidationResult{
			Passed:                false,
			Reason:                fmt.Sprintf("Need at least %d answers, got %d", minQuestions, answerCount),
			QuestionsAnswered:     answerCount,
			MinQuestionsRequired:  minQuestions,
			AgentValidationPassed: agentPassed,
			Details:               &model.HybridValidationDetails{InsufficientQuestions: true},
		}
	}

	if agentPassed != nil && !*agentPassed {
		return &model.HybridValidationResult{
			Passed:                false,
			Reason:                "Agent validation failed - answers are incorrect",
			QuestionsAnswered:     answerCount,
			MinQuestionsRequired:  minQuestions,
			AgentValidationPassed: agentPassed,
			Details:               &model.HybridValidationDetails{ValidationFailed: true},
		}
	}

	quality := 0
	for _, a := range answers {
		if utf8.RuneCountInString(strings.TrimSpace(a)) >= minAnswerLength {
			quality++
		}
	}
	if quality < minQuestions {
		return &model.HybridValidationResult{
			Passed:                false,
			Reason:                fmt.Sprintf("Need at least %d quality answers (min %d characters), got %d", minQuestions, minAnswerLength, quality),
			QuestionsAnswered:     answerCount,
			MinQuestionsRequired:  minQuestions,
			AgentValidationPassed: agentPassed,
			Details:               &model.HybridValidationDetails{LowQualityAnswers: true},
		}
	}

	passed := true
	return &model.HybridValidationResult{
		Passed:                true,
		QuestionsAnswered:     answerCount,
		MinQuestionsRequired:  minQuestions,
		AgentValidationPassed: &passed,
		Details:               &model.HybridValidationDetails{},
	}
}

// metadataInt extracts a positive integer from webhook metadata. JSON decoding
// hands numbers over as float64, so both forms are accepted.
func metadataInt(metadata map[string]interface{}, key string, defaultVal int) int {
	switch v := metadata[key].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return defaultVal
}
