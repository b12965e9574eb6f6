package leaderboard

import (
	"testing"
	"time"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

func testClock() func() time.Time {
	at := time.Unix(1000, 0)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func TestAddScoreOrdersDescending(t *testing.T) {
	s := NewStoreWithClock(NewMemory(), testClock())
	if err := s.AddScore("alice", model.LangPython, 90, 60, 95); err != nil {
		t.Fatalf("add score: %v", err)
	}
	if err := s.AddScore("bob", model.LangPython, 95, 55, 98); err != nil {
		t.Fatalf("add score: %v", err)
	}

	entries := s.Leaderboard(model.LangPython)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Username != "bob" || entries[1].Username != "alice" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestAddScoreTruncatesToTopTen(t *testing.T) {
	s := NewStoreWithClock(NewMemory(), testClock())
	for score := 1; score <= 11; score++ {
		if err := s.AddScore("p", model.LangJava, score, 10, 90); err != nil {
			t.Fatalf("add score: %v", err)
		}
	}
	entries := s.Leaderboard(model.LangJava)
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	if entries[0].Score != 11 || entries[9].Score != 2 {
		t.Fatalf("expected scores 11..2, got %d..%d", entries[0].Score, entries[9].Score)
	}
}

func TestAddScoreTiesKeepInsertionOrder(t *testing.T) {
	s := NewStoreWithClock(NewMemory(), testClock())
	for _, name := range []string{"first", "second", "third"} {
		if err := s.AddScore(name, model.LangCpp, 50, 10, 90); err != nil {
			t.Fatalf("add score: %v", err)
		}
	}
	entries := s.Leaderboard(model.LangCpp)
	if entries[0].Username != "first" || entries[1].Username != "second" || entries[2].Username != "third" {
		t.Fatalf("ties must preserve insertion order: %+v", entries)
	}
}

func TestLeaderboardUnknownLanguageIsEmpty(t *testing.T) {
	s := NewStoreWithClock(NewMemory(), testClock())
	if entries := s.Leaderboard(model.LangPython); len(entries) != 0 {
		t.Fatalf("expected empty leaderboard, got %+v", entries)
	}
}

func TestPersistedStateMirrorsMemory(t *testing.T) {
	kv := NewMemory()
	s := NewStoreWithClock(kv, testClock())
	if err := s.AddScore("alice", model.LangPython, 42, 30, 88); err != nil {
		t.Fatalf("add score: %v", err)
	}

	reloaded := NewStoreWithClock(kv, testClock())
	entries := reloaded.Leaderboard(model.LangPython)
	if len(entries) != 1 || entries[0].Username != "alice" || entries[0].Score != 42 {
		t.Fatalf("reloaded state mismatch: %+v", entries)
	}
}

func TestCorruptPersistedStateDegradesToEmpty(t *testing.T) {
	kv := NewMemory()
	if err := kv.Set("leaderboard", "{not json"); err != nil {
		t.Fatalf("seed kv: %v", err)
	}
	s := NewStoreWithClock(kv, testClock())
	if entries := s.Leaderboard(model.LangPython); len(entries) != 0 {
		t.Fatalf("corrupt state must load as empty, got %+v", entries)
	}
	// The store stays usable after the degraded load.
	if err := s.AddScore("alice", model.LangPython, 10, 10, 90); err != nil {
		t.Fatalf("add score after corrupt load: %v", err)
	}
}
