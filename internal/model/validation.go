package model

// ValidationResult is the outcome for a single catalog question.
type ValidationResult struct {
	QuestionID string `json:"questionId"`
	IsCorrect  bool   `json:"isCorrect"`
	Answered   bool   `json:"answered"`
}

// AggregateValidation is the outcome for a whole module. AllCorrect is only
// true when every question was both answered and correct.
type AggregateValidation struct {
	AllCorrect  bool               `json:"allCorrect"`
	AllAnswered bool               `json:"allAnswered"`
	Results     []ValidationResult `json:"results"`
}

// HybridValidationDetails tags which hybrid check failed.
type HybridValidationDetails struct {
	InsufficientQuestions bool `json:"insufficientQuestions,omitempty"`
	ValidationFailed      bool `json:"validationFailed,omitempty"`
	LowQualityAnswers     bool `json:"lowQualityAnswers,omitempty"`
}

// HybridValidationResult is the outcome of heuristic validation for modules
// without a fixed question catalog. AgentValidationPassed is a pointer because
// the upstream flag is tri-state: explicit false fails the check, absent is
// treated as passing.
type HybridValidationResult struct {
	Passed                bool                     `json:"passed"`
	Reason                string                   `json:"reason,omitempty"`
	QuestionsAnswered     int                      `json:"questionsAnswered"`
	MinQuestionsRequired  int                      `json:"minQuestionsRequired"`
	AgentValidationPassed *bool                    `json:"agentValidationPassed,omitempty"`
	Details               *HybridValidationDetails `json:"details,omitempty"`
}
