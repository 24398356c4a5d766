package model

import (
	"encoding/json"
	"fmt"
)

// PriorityLevel orders automation suggestions by urgency.
type PriorityLevel int

// Priority levels, from least to most urgent.
const (
	LevelLow PriorityLevel = iota
	LevelMedium
	LevelHigh
	LevelCritical
)

// String returns the lowercase level name.
func (l PriorityLevel) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelCritical:
		return "critical"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Escalate returns the next level up, saturating at critical.
func (l PriorityLevel) Escalate() PriorityLevel {
	if l >= LevelCritical {
		return LevelCritical
	}
	return l + 1
}

// MarshalJSON encodes the level as its string name.
func (l PriorityLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its string name.
func (l *PriorityLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "low":
		*l = LevelLow
	case "medium":
		*l = LevelMedium
	case "high":
		*l = LevelHigh
	case "critical":
		*l = LevelCritical
	default:
		return fmt.Errorf("unknown priority level %q", s)
	}
	return nil
}

// AutomationSuggestion recommends automating a recurring message
// pattern. Suggestions are derived purely from a single batch and have
// no identity across runs.
type AutomationSuggestion struct {
	PatternName          string        `json:"pattern_name"`
	TriggerCategory      string        `json:"trigger_category,omitempty"`
	SupportingMessageIDs []string      `json:"supporting_message_ids"`
	PriorityLevel        PriorityLevel `json:"priority_level"`
	EstimatedImpact      string        `json:"estimated_impact"`
	EstimatedEffort      string        `json:"estimated_effort"`
}

// Support returns the number of messages backing the suggestion.
func (s AutomationSuggestion) Support() int {
	return len(s.SupportingMessageIDs)
}
