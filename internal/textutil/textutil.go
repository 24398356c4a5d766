// Package textutil normalizes and tokenizes chat message text for the
// classification and similarity stages.
package textutil

import (
	"regexp"
	"strings"
)

var (
	urlRe     = regexp.MustCompile(`http[s]?://\S+`)
	mentionRe = regexp.MustCompile(`<@[A-Z0-9]+>`)
	channelRe = regexp.MustCompile(`<#[A-Z0-9]+\|[^>]+>`)
	emojiRe   = regexp.MustCompile(`:[a-zA-Z0-9_-]+:`)
	symbolRe  = regexp.MustCompile(`[^\w\s?!.]`)
)

// Normalize strips chat markup (URLs, @-mentions, #-channel references,
// :emoji: codes), drops special characters except basic punctuation,
// collapses whitespace, and lowercases the result.
func Normalize(s string) string {
	s = urlRe.ReplaceAllString(s, "")
	s = mentionRe.ReplaceAllString(s, "")
	s = channelRe.ReplaceAllString(s, "")
	s = emojiRe.ReplaceAllString(s, "")
	s = symbolRe.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.ToLower(s)
}

// Tokenize splits normalized text into word tokens, trimming
// punctuation from token edges. Tokens that are pure punctuation are
// dropped.
func Tokenize(s string) []string {
	fields := strings.Fields(Normalize(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "?!.")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// stopWords are common English words excluded from phrase extraction
// and token-overlap similarity.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "can": {}, "do": {}, "for": {},
	"from": {}, "get": {}, "getting": {}, "got": {}, "has": {},
	"have": {}, "i": {}, "if": {}, "in": {}, "is": {}, "it": {},
	"its": {}, "me": {}, "my": {}, "no": {}, "not": {}, "of": {},
	"on": {}, "or": {}, "our": {}, "so": {}, "some": {}, "that": {},
	"the": {}, "their": {}, "them": {}, "there": {}, "they": {},
	"this": {}, "to": {}, "up": {}, "us": {}, "was": {}, "we": {},
	"were": {}, "will": {}, "with": {}, "you": {}, "your": {},
}

// IsStopWord reports whether the token is a common English word that
// carries no topical signal.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// Fold maps a token to a crude singular form so that "errors" and
// "error" compare equal. Short tokens are left alone to avoid mangling
// words like "ls" or "css".
func Fold(token string) string {
	if len(token) > 3 && strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") {
		return token[:len(token)-1]
	}
	return token
}

// ContentTokens returns folded tokens with stop words removed,
// preserving order.
func ContentTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if IsStopWord(t) {
			continue
		}
		out = append(out, Fold(t))
	}
	return out
}
