package similarity

import "sort"

// SharedPhrases extracts the multi-word token sequences appearing in
// both documents, for edge display and suggestion pattern naming.
// Phrases are bigrams over content tokens (stop words already removed,
// plurals folded), so "500 errors" and "500 error" line up.
func SharedPhrases(a, b *Document) []string {
	pa := phraseSet(a.Content)
	if len(pa) == 0 {
		return nil
	}

	var shared []string
	seen := make(map[string]struct{})
	for _, p := range phrases(b.Content) {
		if _, ok := pa[p]; !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		shared = append(shared, p)
	}

	sort.Strings(shared)
	return shared
}

func phrases(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

func phraseSet(tokens []string) map[string]struct{} {
	ps := phrases(tokens)
	set := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}
