package store

import (
	"context"
	"time"
)

// SessionEventData captures a conversation lifecycle event.
type SessionEventData struct {
	SessionID   string
	LearnerID   int
	LearnerName string
	Action      string // "start" or "end"
}

// TurnEventData captures one resolved tutoring exchange.
type TurnEventData struct {
	SessionID string
	LearnerID int
	UserText  string // empty for the synthetic greeting
	BotText   string
	Status    string // "completed" or "errored"
	LatencyMs int64
	Greeting  bool
}

// FeedbackEventData captures a thumbs rating.
type FeedbackEventData struct {
	LearnerID int
	Rating    int // +1 or -1
	LatencyMs int64
	Delivered bool
}

// TurnRecord is a persisted turn returned by queries.
type TurnRecord struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	LearnerID int
	UserText  string
	BotText   string
	Status    string
	LatencyMs int64
	Greeting  bool
}

// EventRepo provides append and query access to the local event log.
// Appends are best-effort from the caller's perspective: a failed append
// never fails the exchange it records.
type EventRepo interface {
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendTurn(ctx context.Context, data TurnEventData) error
	AppendFeedback(ctx context.Context, data FeedbackEventData) error

	// RecentTurns returns up to limit turns, newest first.
	RecentTurns(ctx context.Context, limit int) ([]TurnRecord, error)
}
