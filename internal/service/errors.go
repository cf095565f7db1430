package service

import (
	"errors"

	"onboarding-api/internal/model"
)

var (
	// ErrModuleNotFound means a completion could not be tied to any module:
	// no explicit id and no tracked conversation to recover one from.
	ErrModuleNotFound = errors.New("module id not found")

	// ErrQuestionNotFound means the question id is not in the module catalog.
	ErrQuestionNotFound = errors.New("question not found")
)

// ValidationRejection is a terminal client error: the submitted answers did
// not pass the gate. Exactly one of Aggregate or Hybrid carries the detail,
// depending on which validator ran.
type ValidationRejection struct {
	Message   string
	Aggregate *model.AggregateValidation
	Hybrid    *model.HybridValidationResult
}

func (e *ValidationRejection) Error() string {
	return e.Message
}
