package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chatsift/chatsift/internal/common"
	"github.com/chatsift/chatsift/internal/model"
)

// rawRecord is the wire form of a message. Text is a pointer so a
// record that omits the field entirely can be told apart from one with
// empty text: the former is malformed, the latter is valid.
type rawRecord struct {
	ID        string   `json:"id"`
	Text      *string  `json:"text"`
	User      string   `json:"user"`
	Channel   string   `json:"channel"`
	Timestamp float64  `json:"ts"`
	Reactions []string `json:"reactions,omitempty"`
}

// loadBatch reads a JSON array of message records and validates the
// input contract before handing the batch to the engine.
func loadBatch(path string) ([]model.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}

	batch := make([]model.RawMessage, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			return nil, common.NewInvalidInput("", "id", "missing")
		}
		if r.Text == nil {
			return nil, common.NewInvalidInput(r.ID, "text", "missing")
		}
		batch = append(batch, model.RawMessage{
			ID:        r.ID,
			Text:      *r.Text,
			User:      r.User,
			Channel:   r.Channel,
			Timestamp: r.Timestamp,
			Reactions: r.Reactions,
		})
	}
	return batch, nil
}

// writeResult serializes the analysis result as an indented JSON
// document.
func writeResult(path string, result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
