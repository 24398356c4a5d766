// Package rules defines category rules and their load-time validation.
//
// A rule pairs a category name with the lexical signals (keywords and
// regex patterns) that indicate a message belongs to it. Rules are
// loaded and compiled once at startup; the resulting Set is immutable
// and safe for concurrent use.
package rules

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chatsift/chatsift/internal/common"
)

// CatchAll is the mandatory fallback category assigned when no rule
// matches with sufficient confidence.
const CatchAll = "general"

// Rule is the external (file) form of a category rule.
type Rule struct {
	Name          string   `yaml:"name" json:"name"`
	Keywords      []string `yaml:"keywords" json:"keywords"`
	Patterns      []string `yaml:"patterns" json:"patterns"`
	Color         string   `yaml:"color" json:"color"` // display metadata, opaque here
	PriorityBoost float64  `yaml:"priority_boost" json:"priority_boost"`
}

// CompiledRule is a Rule with its keyword and pattern matchers
// pre-compiled. Keywords match as whole words, case-insensitively;
// multi-word keywords match across whitespace.
type CompiledRule struct {
	Rule
	keywordRes []*regexp.Regexp
	patternRes []*regexp.Regexp
}

// KeywordOccurrences counts keyword hits in the normalized text. Every
// occurrence counts, not just the first.
func (r *CompiledRule) KeywordOccurrences(norm string) int {
	total := 0
	for _, re := range r.keywordRes {
		total += len(re.FindAllStringIndex(norm, -1))
	}
	return total
}

// PatternMatches counts how many distinct patterns match the normalized
// text. A pattern matching several times still counts once.
func (r *CompiledRule) PatternMatches(norm string) int {
	n := 0
	for _, re := range r.patternRes {
		if re.MatchString(norm) {
			n++
		}
	}
	return n
}

// Empty reports whether the rule has no signals at all and therefore
// can never win classification.
func (r *CompiledRule) Empty() bool {
	return len(r.keywordRes) == 0 && len(r.patternRes) == 0
}

// Set is an immutable, validated collection of category rules in
// declaration order.
type Set struct {
	rules  []CompiledRule
	byName map[string]*CompiledRule
}

// NewSet validates and compiles the given rules. It fails fast on
// duplicate or empty names, malformed regex patterns, out-of-range
// priority boosts, or a missing catch-all category.
func NewSet(rs []Rule) (*Set, error) {
	if len(rs) == 0 {
		return nil, common.ErrNoRules
	}

	set := &Set{
		rules:  make([]CompiledRule, 0, len(rs)),
		byName: make(map[string]*CompiledRule, len(rs)),
	}

	for _, r := range rs {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule with empty name", common.ErrInvalidRule)
		}
		if _, dup := set.byName[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate rule %q", common.ErrInvalidRule, r.Name)
		}
		if r.PriorityBoost < 0 || r.PriorityBoost > 1 {
			return nil, fmt.Errorf("%w: rule %q: priority_boost %v outside [0,1]",
				common.ErrInvalidRule, r.Name, r.PriorityBoost)
		}

		compiled := CompiledRule{Rule: r}
		for _, kw := range r.Keywords {
			re, err := compileKeyword(kw)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q: keyword %q: %v",
					common.ErrInvalidRule, r.Name, kw, err)
			}
			compiled.keywordRes = append(compiled.keywordRes, re)
		}
		for _, p := range r.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, fmt.Errorf("%w: rule %q: pattern %q: %v",
					common.ErrInvalidRule, r.Name, p, err)
			}
			compiled.patternRes = append(compiled.patternRes, re)
		}

		set.rules = append(set.rules, compiled)
	}

	for i := range set.rules {
		set.byName[set.rules[i].Name] = &set.rules[i]
	}

	catchAll, ok := set.byName[CatchAll]
	if !ok {
		return nil, common.ErrMissingCatchAll
	}
	if !catchAll.Empty() {
		return nil, fmt.Errorf("%w: catch-all %q must have no keywords or patterns",
			common.ErrInvalidRule, CatchAll)
	}

	return set, nil
}

// compileKeyword turns a keyword into a whole-word, case-insensitive
// matcher. Whitespace inside multi-word keywords matches any run of
// whitespace.
func compileKeyword(kw string) (*regexp.Regexp, error) {
	kw = strings.TrimSpace(kw)
	if kw == "" {
		return nil, fmt.Errorf("empty keyword")
	}
	parts := strings.Fields(kw)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile(`(?i)\b` + strings.Join(parts, `\s+`) + `\b`)
}

// Load reads and compiles a rule set from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return Parse(data)
}

// Parse compiles a rule set from YAML bytes.
func Parse(data []byte) (*Set, error) {
	var file struct {
		Categories []Rule `yaml:"categories"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return NewSet(file.Categories)
}

// Rules returns the compiled rules in declaration order. The returned
// slice must not be modified.
func (s *Set) Rules() []CompiledRule {
	return s.rules
}

// Lookup returns the rule with the given category name.
func (s *Set) Lookup(name string) (*CompiledRule, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Boost returns the priority boost of the given category, or 0 for an
// unknown name.
func (s *Set) Boost(category string) float64 {
	if r, ok := s.byName[category]; ok {
		return r.PriorityBoost
	}
	return 0
}

// Names returns the category names in declaration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.rules))
	for i := range s.rules {
		names[i] = s.rules[i].Name
	}
	return names
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	return len(s.rules)
}
