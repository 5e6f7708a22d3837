package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"chat-with-search/internal/model"
)

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore()

	t.Run("Creates On First Access", func(t *testing.T) {
		mem := store.GetOrCreate("s1")
		if mem == nil {
			t.Fatal("expected memory, got nil")
		}
		if store.Count() != 1 {
			t.Errorf("expected 1 session, got %d", store.Count())
		}
	})

	t.Run("Returns Same Memory For Same ID", func(t *testing.T) {
		a := store.GetOrCreate("s1")
		b := store.GetOrCreate("s1")
		if a != b {
			t.Error("expected the same memory instance for the same session id")
		}
	})

	t.Run("Distinct Sessions Are Isolated", func(t *testing.T) {
		store.Append("s1", model.RoleUser, "hello")
		if got := len(store.History("s2")); got != 0 {
			t.Errorf("expected empty history for s2, got %d turns", got)
		}
	})
}

func TestStoreAppendAndHistory(t *testing.T) {
	store := NewStore()
	store.Append("s1", model.RoleUser, "what is the weather")
	store.Append("s1", model.RoleAssistant, "sunny")

	history := store.History("s1")
	if len(history) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(history))
	}
	if history[0].Role != model.RoleUser || history[0].Content != "what is the weather" {
		t.Errorf("unexpected first turn: %+v", history[0])
	}
	if history[1].Role != model.RoleAssistant || history[1].Content != "sunny" {
		t.Errorf("unexpected second turn: %+v", history[1])
	}

	t.Run("History Returns A Copy", func(t *testing.T) {
		history[0].Content = "mutated"
		if store.History("s1")[0].Content != "what is the weather" {
			t.Error("mutating the returned slice leaked into the store")
		}
	})

	t.Run("Unknown Session Has Nil History", func(t *testing.T) {
		if got := store.History("missing"); got != nil {
			t.Errorf("expected nil history, got %v", got)
		}
	})
}

func TestStoreClear(t *testing.T) {
	store := NewStore()
	store.Append("s1", model.RoleUser, "hi")

	store.Clear("s1")
	if got := len(store.History("s1")); got != 0 {
		t.Errorf("expected cleared history, got %d turns", got)
	}

	// Clearing an unknown session is a no-op.
	store.Clear("never-seen")
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n%4)
			store.Append(id, model.RoleUser, "msg")
			store.History(id)
		}(i)
	}
	wg.Wait()

	if store.Count() != 4 {
		t.Errorf("expected 4 sessions, got %d", store.Count())
	}
	total := 0
	for i := 0; i < 4; i++ {
		total += len(store.History(fmt.Sprintf("s%d", i)))
	}
	if total != 20 {
		t.Errorf("expected 20 turns across sessions, got %d", total)
	}
}

func TestMemoryAcquireSerializes(t *testing.T) {
	mem := NewStore().GetOrCreate("s1")

	release := mem.Acquire()
	acquired := make(chan struct{})
	go func() {
		r := mem.Acquire()
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second Acquire succeeded while the first was held")
	case <-time.After(20 * time.Millisecond):
	}

	release()
	<-acquired
}
