package service

import (
	"context"
	"errors"
	"testing"
)

func newProgressService(repo *fakeProgressRepo) *ProgressService {
	return NewProgressService(repo, NewValidationService(testCatalog()), nil)
}

func TestCompleteModule(t *testing.T) {
	ctx := context.Background()

	t.Run("all correct answers complete the module", func(t *testing.T) {
		repo := newFakeProgressRepo()
		svc := newProgressService(repo)

		record, err := svc.CompleteModule(ctx, "alice", "4", map[string]string{
			"q4-1": "create and manage",
			"q4-2": "create submit track",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !record.Completed || record.CompletedAt == nil {
			t.Errorf("expected completed record, got %+v", record)
		}
	})

	t.Run("unanswered question is rejected before any write", func(t *testing.T) {
		repo := newFakeProgressRepo()
		svc := newProgressService(repo)

		_, err := svc.CompleteModule(ctx, "alice", "4", map[string]string{
			"q4-1": "create and manage",
		})
		var rejection *ValidationRejection
		if !errors.As(err, &rejection) {
			t.Fatalf("expected ValidationRejection, got %v", err)
		}
		if rejection.Message != "Not all questions have been answered" {
			t.Errorf("unexpected message %q", rejection.Message)
		}
		if len(repo.records) != 0 {
			t.Error("rejection must not persist anything")
		}
	})

	t.Run("wrong answer is rejected with the 100 percent gate", func(t *testing.T) {
		repo := newFakeProgressRepo()
		svc := newProgressService(repo)

		_, err := svc.CompleteModule(ctx, "alice", "4", map[string]string{
			"q4-1": "create and manage",
			"q4-2": "no clue",
		})
		var rejection *ValidationRejection
		if !errors.As(err, &rejection) {
			t.Fatalf("expected ValidationRejection, got %v", err)
		}
		if rejection.Message != "Not all answers are correct. 100% correctness required." {
			t.Errorf("unexpected message %q", rejection.Message)
		}
		if rejection.Aggregate == nil {
			t.Error("rejection must carry the validation detail")
		}
	})

	t.Run("empty user id falls back to the default sentinel", func(t *testing.T) {
		repo := newFakeProgressRepo()
		svc := newProgressService(repo)

		record, err := svc.CompleteModule(ctx, "", "4", map[string]string{
			"q4-1": "create and manage",
			"q4-2": "create submit track",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.UserID != DefaultUserID {
			t.Errorf("expected user %q, got %q", DefaultUserID, record.UserID)
		}
	})
}

func TestCompleteModuleIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	svc := newProgressService(repo)

	first := map[string]string{"q4-1": "create and manage", "q4-2": "create submit track"}
	second := map[string]string{"q4-1": "initiators create and manage items", "q4-2": "submit and track"}

	if _, err := svc.CompleteModule(ctx, "alice", "4", first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := svc.CompleteModule(ctx, "alice", "4", second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.records))
	}
	record, _ := repo.GetOne(ctx, "alice", "4")
	if record.Answers["q4-1"] != second["q4-1"] {
		t.Error("second save must win")
	}
}

func TestGetAllProgressKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProgressRepo()
	svc := newProgressService(repo)

	for _, moduleID := range []string{"4", "2", "5"} {
		if _, err := svc.MarkCompleted(ctx, "alice", moduleID, "", nil, nil); err != nil {
			t.Fatalf("save %s: %v", moduleID, err)
		}
	}

	summaries, err := svc.GetAllProgress(ctx, "alice")
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	for i, want := range []string{"4", "2", "5"} {
		if summaries[i].ModuleID != want {
			t.Errorf("position %d: got %s, want %s", i, summaries[i].ModuleID, want)
		}
	}
}
