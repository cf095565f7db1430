package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	for _, moduleID := range []string{"1", "2", "3", "4", "5"} {
		questions := cat.QuestionsForModule(moduleID)
		if len(questions) != 2 {
			t.Errorf("module %s: expected 2 questions, got %d", moduleID, len(questions))
		}
		if !cat.HasQuestions(moduleID) {
			t.Errorf("module %s: expected HasQuestions", moduleID)
		}
	}

	questions := cat.QuestionsForModule("4")
	if questions[0].ID != "q4-1" || questions[1].ID != "q4-2" {
		t.Errorf("module 4 questions out of order: %s, %s", questions[0].ID, questions[1].ID)
	}
	if questions[0].CorrectAnswer != "create and manage" {
		t.Errorf("unexpected canonical answer %q", questions[0].CorrectAnswer)
	}
}

func TestUnknownModule(t *testing.T) {
	cat := Default()

	if qs := cat.QuestionsForModule("99"); len(qs) != 0 {
		t.Errorf("expected empty list for unknown module, got %d", len(qs))
	}
	if cat.HasQuestions("99") {
		t.Error("unknown module must not report questions")
	}
}

func TestQuestionsForModuleReturnsCopy(t *testing.T) {
	cat := Default()

	questions := cat.QuestionsForModule("1")
	questions[0].CorrectAnswer = "tampered"

	if cat.QuestionsForModule("1")[0].CorrectAnswer == "tampered" {
		t.Error("catalog state must not be mutable through returned slices")
	}
}
