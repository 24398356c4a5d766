// Package model defines the core data structures for the sift engine.
package model

// RawMessage is a single chat message as delivered by the ingestion layer.
// Instances are immutable once handed to the engine.
type RawMessage struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	User      string   `json:"user"`
	Channel   string   `json:"channel"`
	Timestamp float64  `json:"ts"` // seconds since epoch
	Reactions []string `json:"reactions,omitempty"`
}

// ClassifiedMessage is a RawMessage with its category assignment.
// Category is always a member of the configured rule set; messages that
// match no rule carry the catch-all category with confidence 0.
type ClassifiedMessage struct {
	RawMessage
	Category   string  `json:"category"`
	Confidence float64 `json:"category_confidence"`
}

// ScoredMessage is a ClassifiedMessage with its priority score.
// Priority is always in [0,1]. Breakdown maps each signal name to its
// contribution so scores can be inspected and tested signal by signal.
type ScoredMessage struct {
	ClassifiedMessage
	Priority  float64            `json:"priority"`
	Breakdown map[string]float64 `json:"priority_breakdown"`
}

// Age returns the message age in seconds relative to the given
// timestamp, never negative.
func (m RawMessage) Age(newest float64) float64 {
	age := newest - m.Timestamp
	if age < 0 {
		return 0
	}
	return age
}
