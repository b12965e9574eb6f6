// Package leaderboard maintains per-language top-10 score lists.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/CHARAN123567888880/SyntaxRush/internal/model"
)

// maxEntries caps each language's list.
const maxEntries = 10

// storageKey is the key under which the full mapping is persisted.
const storageKey = "leaderboard"

// KV is the persistence port for the leaderboard. Implementations must
// be synchronous; a missing key is reported via the bool, not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Store keeps the in-memory leaderboard mirrored to a KV backend.
type Store struct {
	kv     KV
	boards map[model.Language][]model.LeaderboardEntry
	now    func() time.Time
}

// NewStore loads the persisted leaderboard. Missing or unparsable
// persisted state degrades to an empty mapping, never an error.
func NewStore(kv KV) *Store {
	return NewStoreWithClock(kv, time.Now)
}

// NewStoreWithClock is NewStore with an injected clock.
func NewStoreWithClock(kv KV, now func() time.Time) *Store {
	s := &Store{kv: kv, now: now}
	s.load()
	return s
}

func (s *Store) load() {
	s.boards = map[model.Language][]model.LeaderboardEntry{}
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil || !ok {
		return
	}
	var boards map[model.Language][]model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &boards); err != nil {
		// Corrupt state is treated as absent.
		return
	}
	s.boards = boards
}

// AddScore appends an entry for the language, keeps the list sorted
// descending by score (stable on ties), truncates to the top 10, and
// persists the full mapping.
func (s *Store) AddScore(username string, lang model.Language, score int, wpm, accuracy float64) error {
	entries := append(s.boards[lang], model.LeaderboardEntry{
		Username:  username,
		Score:     score,
		WPM:       wpm,
		Accuracy:  accuracy,
		Timestamp: s.now().UnixMilli(),
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	s.boards[lang] = entries

	raw, err := json.Marshal(s.boards)
	if err != nil {
		return fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	if err := s.kv.Set(storageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist leaderboard: %w", err)
	}
	return nil
}

// Leaderboard returns the ordered list for a language, empty when none
// exists. The returned slice is a copy.
func (s *Store) Leaderboard(lang model.Language) []model.LeaderboardEntry {
	entries := s.boards[lang]
	out := make([]model.LeaderboardEntry, len(entries))
	copy(out, entries)
	return out
}

// Languages lists languages that have at least one entry.
func (s *Store) Languages() []model.Language {
	out := make([]model.Language, 0, len(s.boards))
	for lang := range s.boards {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Memory is an in-memory KV used in tests and as the degraded fallback
// when no database is available.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}
