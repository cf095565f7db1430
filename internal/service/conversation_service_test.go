package service

import (
	"context"
	"testing"
)

func TestConversationLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeConversationRepo()
	cache := newFakeConversationCache()
	svc := NewConversationService(repo, cache)

	t.Run("start then get returns the stored mapping", func(t *testing.T) {
		if _, err := svc.Start(ctx, "c1", "4", "alice"); err != nil {
			t.Fatalf("start: %v", err)
		}

		conv, err := svc.Get(ctx, "c1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if conv == nil {
			t.Fatal("expected conversation, got nil")
		}
		if conv.ModuleID != "4" || conv.UserID != "alice" {
			t.Errorf("got (%s, %s), want (4, alice)", conv.ModuleID, conv.UserID)
		}
	})

	t.Run("restart overwrites the mapping", func(t *testing.T) {
		if _, err := svc.Start(ctx, "c1", "5", "bob"); err != nil {
			t.Fatalf("start: %v", err)
		}
		conv, _ := svc.Get(ctx, "c1")
		if conv.ModuleID != "5" || conv.UserID != "bob" {
			t.Errorf("restart must win, got (%s, %s)", conv.ModuleID, conv.UserID)
		}
	})

	t.Run("end then get returns nil", func(t *testing.T) {
		if err := svc.End(ctx, "c1"); err != nil {
			t.Fatalf("end: %v", err)
		}
		conv, err := svc.Get(ctx, "c1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if conv != nil {
			t.Errorf("expected nil after end, got %+v", conv)
		}
	})

	t.Run("end on never-started id is a no-op", func(t *testing.T) {
		if err := svc.End(ctx, "never-started"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestConversationGetFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	repo := newFakeConversationRepo()
	cache := newFakeConversationCache()
	svc := NewConversationService(repo, cache)

	if _, err := svc.Start(ctx, "c2", "3", "carol"); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Simulate cache expiry; the durable store must still answer.
	delete(cache.entries, "c2")

	conv, err := svc.Get(ctx, "c2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if conv == nil || conv.ModuleID != "3" {
		t.Fatalf("expected store fallback to return module 3, got %+v", conv)
	}

	// And the hit is cached again.
	if _, ok := cache.entries["c2"]; !ok {
		t.Error("expected cache backfill after store hit")
	}
}
