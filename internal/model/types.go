// Package model defines shared data structures.
package model

import "time"

// Language identifies a supported snippet language.
type Language string

// Supported snippet languages.
const (
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangCpp        Language = "cpp"
)

// Difficulty selects how much code a generated snippet contains.
type Difficulty string

// Supported generator difficulties.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Snippet is a titled block of practice code.
type Snippet struct {
	Title    string
	Code     string
	Language Language
}

// LeaderboardEntry is a single best-score record for a language.
type LeaderboardEntry struct {
	Username  string  `json:"username"`
	Score     int     `json:"score"`
	WPM       float64 `json:"wpm"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
}

// PlayConfig defines practice settings.
type PlayConfig struct {
	Username    string
	Language    Language
	Difficulty  Difficulty
	GoalMinutes float64
}

// SessionRecord captures a completed practice session.
type SessionRecord struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Language   Language
	Title      string
	Correct    int
	Total      int
	WPM        float64
	Accuracy   float64
	Score      int
	DurationMs int64
}

// KeySessionStats stores per-key stats persisted with a session.
type KeySessionStats struct {
	Key      string
	Correct  int
	Wrong    int
	TopSpeed float64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Correct    int
	Total      int
	WPM        float64
	Accuracy   float64
	Score      int
	DurationMs int64
}

// KeyAggregate aggregates key stats across sessions.
type KeyAggregate struct {
	Key      string
	Correct  int
	Wrong    int
	TopSpeed float64
}
