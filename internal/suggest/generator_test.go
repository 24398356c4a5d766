package suggest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatsift/chatsift/internal/model"
)

func scoredMsg(id, category string, priority float64) model.ScoredMessage {
	return model.ScoredMessage{
		ClassifiedMessage: model.ClassifiedMessage{
			RawMessage: model.RawMessage{ID: id},
			Category:   category,
		},
		Priority: priority,
	}
}

func groupOf(category string, n int, priority float64) []model.ScoredMessage {
	msgs := make([]model.ScoredMessage, n)
	for i := range msgs {
		msgs[i] = scoredMsg(fmt.Sprintf("%s_%d", category, i), category, priority)
	}
	return msgs
}

func TestGenerator_EmitsOneSuggestionPerQualifyingCategory(t *testing.T) {
	gen := New(DefaultConfig())

	batch := groupOf("access_request", 5, 0.4)
	got := gen.Generate(batch, nil)

	require.Len(t, got, 1)
	s := got[0]
	assert.Equal(t, "access_request", s.TriggerCategory)
	assert.Len(t, s.SupportingMessageIDs, 5)
	assert.Contains(t, s.PatternName, "Self-service access portal")
}

func TestGenerator_SupportFloor(t *testing.T) {
	gen := New(DefaultConfig())

	// Two bug reports are below the default minimum support of three.
	got := gen.Generate(groupOf("bug_report", 2, 0.9), nil)
	assert.Empty(t, got)

	got = gen.Generate(groupOf("bug_report", 3, 0.2), nil)
	require.Len(t, got, 1)
	assert.GreaterOrEqual(t, got[0].Support(), DefaultConfig().MinSupport)
}

func TestGenerator_CatchAllNeverSuggested(t *testing.T) {
	gen := New(DefaultConfig())

	got := gen.Generate(groupOf("general", 10, 0.5), nil)
	assert.Empty(t, got)
}

func TestGenerator_Escalation(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		priority  float64
		wantLevel model.PriorityLevel
	}{
		{"base level at minimum support", 3, 0.2, model.LevelMedium},
		{"large group escalates once", 5, 0.2, model.LevelHigh},
		{"hot group escalates once", 3, 0.9, model.LevelHigh},
		{"large hot group escalates twice", 5, 0.9, model.LevelCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := New(DefaultConfig())
			got := gen.Generate(groupOf("question", tt.count, tt.priority), nil)
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantLevel, got[0].PriorityLevel)
		})
	}
}

func TestGenerator_EscalationSaturatesAtCritical(t *testing.T) {
	gen := New(DefaultConfig())

	// urgent starts at critical; nothing can push it past that.
	got := gen.Generate(groupOf("urgent", 20, 1.0), nil)
	require.Len(t, got, 1)
	assert.Equal(t, model.LevelCritical, got[0].PriorityLevel)
}

func TestGenerator_Ordering(t *testing.T) {
	gen := New(DefaultConfig())

	batch := append(groupOf("question", 3, 0.1), groupOf("bug_report", 4, 0.1)...)
	batch = append(batch, groupOf("deployment", 3, 0.1)...)

	got := gen.Generate(batch, nil)
	require.Len(t, got, 3)

	// bug_report (high) first, then the two medium groups; question
	// outranks deployment only when support says so.
	assert.Equal(t, "bug_report", got[0].TriggerCategory)
	for i := 1; i < len(got); i++ {
		if got[i-1].PriorityLevel == got[i].PriorityLevel {
			assert.GreaterOrEqual(t, got[i-1].Support(), got[i].Support())
		} else {
			assert.Greater(t, got[i-1].PriorityLevel, got[i].PriorityLevel)
		}
	}
}

func TestGenerator_UnknownCategoryGetsGenericTemplate(t *testing.T) {
	gen := New(DefaultConfig())

	got := gen.Generate(groupOf("onboarding", 4, 0.3), nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Recurring onboarding workflow", got[0].PatternName)
}

func TestGenerator_RecurringPhraseNamesPattern(t *testing.T) {
	gen := New(DefaultConfig())

	batch := groupOf("bug_report", 3, 0.2)
	edges := []model.SimilarityEdge{
		{SourceID: "bug_report_0", TargetID: "bug_report_1", Score: 0.8,
			SharedPhrases: []string{"500 error"}},
		{SourceID: "bug_report_1", TargetID: "bug_report_2", Score: 0.7,
			SharedPhrases: []string{"500 error", "signup form"}},
		// Edges outside the group must not contribute.
		{SourceID: "bug_report_0", TargetID: "other", Score: 0.9,
			SharedPhrases: []string{"unrelated phrase", "unrelated phrase"}},
	}

	got := gen.Generate(batch, edges)
	require.Len(t, got, 1)
	assert.Equal(t, "Automated bug triage (500 error)", got[0].PatternName)
}

func TestGenerator_EmptyInputs(t *testing.T) {
	gen := New(DefaultConfig())
	assert.Empty(t, gen.Generate(nil, nil))
}
