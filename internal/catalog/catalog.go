package catalog

import "onboarding-api/internal/model"

// Catalog is the static per-module question table. It is immutable after
// construction; QuestionsForModule hands out copies so callers cannot mutate
// the shared state.
type Catalog struct {
	questions map[string][]model.Question
}

// New builds a catalog from an explicit table. Used by tests.
func New(questions map[string][]model.Question) *Catalog {
	return &Catalog{questions: questions}
}

// QuestionsForModule returns the ordered questions for a module, or an empty
// slice when the module has no catalog entry.
func (c *Catalog) QuestionsForModule(moduleID string) []model.Question {
	qs, ok := c.questions[moduleID]
	if !ok {
		return nil
	}
	out := make([]model.Question, len(qs))
	copy(out, qs)
	return out
}

// HasQuestions reports whether a module has a fixed question catalog. Modules
// without one are validated heuristically instead.
func (c *Catalog) HasQuestions(moduleID string) bool {
	return len(c.questions[moduleID]) > 0
}

// Default returns the question catalog for the five onboarding modules.
func Default() *Catalog {
	return New(map[string][]model.Question{
		"1": {
			{
				ID:            "q1-1",
				Prompt:        "What is the main purpose of KissFlow?",
				CorrectAnswer: "automate processes workflows",
				Keywords:      []string{"automate", "process", "workflow", "business", "organization", "management"},
			},
			{
				ID:            "q1-2",
				Prompt:        "Can you name one key feature of KissFlow?",
				CorrectAnswer: "process management workflow automation form builder",
				Keywords:      []string{"process", "workflow", "automation", "form", "builder", "approval", "task", "management"},
			},
		},
		"2": {
			{
				ID:            "q2-1",
				Prompt:        "What is conditional visibility used for?",
				CorrectAnswer: "show hide fields based on conditions",
				Keywords:      []string{"show", "hide", "field", "condition", "based", "dynamic", "form"},
			},
			{
				ID:            "q2-2",
				Prompt:        "When would you use conditional visibility in a form?",
				CorrectAnswer: "when fields depend on other inputs",
				Keywords:      []string{"depend", "input", "condition", "dynamic", "relevant", "context"},
			},
		},
		"3": {
			{
				ID:            "q3-1",
				Prompt:        "How do you access a process in KissFlow?",
				CorrectAnswer: "navigate dashboard select process",
				Keywords:      []string{"navigate", "dashboard", "select", "process", "menu", "access", "open"},
			},
			{
				ID:            "q3-2",
				Prompt:        "What information can you see when accessing a process?",
				CorrectAnswer: "items tasks status details",
				Keywords:      []string{"items", "tasks", "status", "details", "information", "view", "see"},
			},
		},
		"4": {
			{
				ID:            "q4-1",
				Prompt:        "What can an initiator do with items in KissFlow?",
				CorrectAnswer: "create and manage",
				Keywords:      []string{"create", "manage", "initiate", "start", "submit", "items"},
			},
			{
				ID:            "q4-2",
				Prompt:        "What actions are available to an initiator?",
				CorrectAnswer: "create submit track",
				Keywords:      []string{"create", "submit", "track", "view", "edit", "delete", "monitor"},
			},
		},
		"5": {
			{
				ID:            "q5-1",
				Prompt:        "What is the role of an assignee in KissFlow?",
				CorrectAnswer: "complete assigned tasks",
				Keywords:      []string{"complete", "assigned", "task", "work", "action", "responsibility"},
			},
			{
				ID:            "q5-2",
				Prompt:        "How does an assignee know they have tasks?",
				CorrectAnswer: "notifications dashboard",
				Keywords:      []string{"notification", "dashboard", "alert", "reminder", "indicator", "see"},
			},
		},
	})
}
