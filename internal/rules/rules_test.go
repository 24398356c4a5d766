package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatsift/chatsift/internal/common"
)

func TestNewSet_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rules   []Rule
		wantErr error
	}{
		{
			name:    "empty set",
			rules:   nil,
			wantErr: common.ErrNoRules,
		},
		{
			name: "missing catch-all",
			rules: []Rule{
				{Name: "bug_report", Keywords: []string{"bug"}},
			},
			wantErr: common.ErrMissingCatchAll,
		},
		{
			name: "catch-all with keywords",
			rules: []Rule{
				{Name: CatchAll, Keywords: []string{"fyi"}},
			},
			wantErr: common.ErrInvalidRule,
		},
		{
			name: "empty rule name",
			rules: []Rule{
				{Name: "", Keywords: []string{"x"}},
				{Name: CatchAll},
			},
			wantErr: common.ErrInvalidRule,
		},
		{
			name: "duplicate rule name",
			rules: []Rule{
				{Name: "dup", Keywords: []string{"a"}},
				{Name: "dup", Keywords: []string{"b"}},
				{Name: CatchAll},
			},
			wantErr: common.ErrInvalidRule,
		},
		{
			name: "malformed regex pattern",
			rules: []Rule{
				{Name: "bad", Patterns: []string{"([unclosed"}},
				{Name: CatchAll},
			},
			wantErr: common.ErrInvalidRule,
		},
		{
			name: "priority boost out of range",
			rules: []Rule{
				{Name: "hot", Keywords: []string{"hot"}, PriorityBoost: 1.5},
				{Name: CatchAll},
			},
			wantErr: common.ErrInvalidRule,
		},
		{
			name: "valid minimal set",
			rules: []Rule{
				{Name: "bug_report", Keywords: []string{"bug"}, PriorityBoost: 0.3},
				{Name: CatchAll},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewSet(tt.rules)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.rules), set.Len())
		})
	}
}

func TestCompiledRule_KeywordOccurrences(t *testing.T) {
	set, err := NewSet([]Rule{
		{Name: "r", Keywords: []string{"error", "not working"}},
		{Name: CatchAll},
	})
	require.NoError(t, err)

	rule, ok := set.Lookup("r")
	require.True(t, ok)

	tests := []struct {
		name string
		norm string
		want int
	}{
		{"single hit", "an error happened", 1},
		{"every occurrence counts", "error after error after error", 3},
		{"case insensitive", "ERROR", 1},
		{"no partial word hit", "errors and erroring", 0},
		{"multi-word keyword", "the page is not working today", 1},
		{"no hits", "all good here", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.KeywordOccurrences(tt.norm))
		})
	}
}

func TestCompiledRule_PatternMatches(t *testing.T) {
	set, err := NewSet([]Rule{
		{Name: "r", Patterns: []string{`500.*error`, `stack trace`}},
		{Name: CatchAll},
	})
	require.NoError(t, err)

	rule, ok := set.Lookup("r")
	require.True(t, ok)

	// Distinct patterns count once each, however often they repeat.
	assert.Equal(t, 2, rule.PatternMatches("500 error with stack trace and another 500 error"))
	assert.Equal(t, 1, rule.PatternMatches("saw a 500 internal error"))
	assert.Equal(t, 0, rule.PatternMatches("nothing relevant"))
}

func TestLoad_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `categories:
  - name: incident
    keywords: [outage, down]
    patterns: ['production.*down']
    color: "#FF4757"
    priority_boost: 0.8
  - name: general
    color: "#66BB6A"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	set, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"incident", "general"}, set.Names())
	assert.InDelta(t, 0.8, set.Boost("incident"), 1e-9)
	assert.Zero(t, set.Boost("unknown"))

	rule, ok := set.Lookup("incident")
	require.True(t, ok)
	assert.Equal(t, 1, rule.PatternMatches("production is down"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultSet(t *testing.T) {
	set := DefaultSet()

	catchAll, ok := set.Lookup(CatchAll)
	require.True(t, ok)
	assert.True(t, catchAll.Empty())

	for _, rule := range set.Rules() {
		assert.GreaterOrEqual(t, rule.PriorityBoost, 0.0)
		assert.LessOrEqual(t, rule.PriorityBoost, 1.0)
	}

	// Declaration order decides ties, so urgent must come first.
	assert.Equal(t, "urgent", set.Rules()[0].Name)
}
