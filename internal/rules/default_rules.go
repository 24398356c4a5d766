package rules

// DefaultRules returns the built-in category rule set for engineering
// chat triage. Declaration order matters: earlier rules win confidence
// ties.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "urgent",
			Keywords: []string{
				"urgent", "asap", "emergency", "critical", "down",
				"outage", "production", "immediately",
			},
			Patterns: []string{
				`urgent.*help`, `production.*down`, `critical.*issue`, `emergency`,
			},
			Color:         "#FF4757",
			PriorityBoost: 0.8,
		},
		{
			Name: "bug_report",
			Keywords: []string{
				"bug", "error", "issue", "problem", "broken", "not working",
				"crash", "fail", "exception", "500", "404",
			},
			Patterns: []string{
				`error.*code`, `exception`, `stack trace`, `500.*error`,
				`404.*error`, `not.*work`,
			},
			Color:         "#FF6B6B",
			PriorityBoost: 0.3,
		},
		{
			Name: "access_request",
			Keywords: []string{
				"access", "permission", "login", "password", "account",
				"credential", "auth",
			},
			Patterns: []string{
				`need.*access`, `can.?t.*login`, `permission.*denied`, `access.*to`,
			},
			Color:         "#AB47BC",
			PriorityBoost: 0.4,
		},
		{
			Name: "deployment",
			Keywords: []string{
				"deploy", "release", "push", "merge", "build", "ci/cd",
				"pipeline", "staging",
			},
			Patterns: []string{
				`deploy.*to`, `release.*notes`, `build.*failed`, `pipeline`,
			},
			Color:         "#FFA726",
			PriorityBoost: 0.3,
		},
		{
			Name: "feature_request",
			Keywords: []string{
				"feature", "enhancement", "improve", "add", "new", "request",
				"would like", "could we",
			},
			Patterns: []string{
				`can.*we.*add`, `would.*be.*nice`, `feature.*request`,
			},
			Color:         "#4ECDC4",
			PriorityBoost: 0.2,
		},
		{
			Name: "question",
			Keywords: []string{
				"how", "what", "where", "when", "why", "help", "question",
				"explain", "understand",
			},
			Patterns: []string{
				`\?$`, `how.*to`, `what.*is`, `can.*someone`, `help.*me`,
			},
			Color:         "#45B7D1",
			PriorityBoost: 0.1,
		},
		{
			// Catch-all: assigned when nothing else matches with
			// sufficient confidence. Must stay signal-free.
			Name:          CatchAll,
			Color:         "#66BB6A",
			PriorityBoost: 0.0,
		},
	}
}

// DefaultSet compiles the built-in rules. The defaults are known-good,
// so compilation cannot fail.
func DefaultSet() *Set {
	set, err := NewSet(DefaultRules())
	if err != nil {
		panic(err)
	}
	return set
}
