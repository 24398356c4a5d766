package similarity

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/chatsift/chatsift/internal/model"
)

var textGen = rapid.Custom(func(rt *rapid.T) string {
	words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 15).Draw(rt, "words")
	return strings.Join(words, " ")
})

// Similarity is symmetric for every provider: Score(a,b) == Score(b,a)
// exactly, including when vectors are attached.
func TestProperty_ScoreSymmetric(t *testing.T) {
	lexical := LexicalProvider{cfg: DefaultConfig()}
	embedded := EmbeddingProvider{lexical: lexical, cfg: DefaultConfig()}

	rapid.Check(t, func(rt *rapid.T) {
		a := NewDocument("a", textGen.Draw(rt, "textA"))
		b := NewDocument("b", textGen.Draw(rt, "textB"))

		if got, rev := lexical.Score(&a, &b), lexical.Score(&b, &a); got != rev {
			rt.Errorf("lexical asymmetric: %v != %v", got, rev)
		}

		dims := rapid.IntRange(1, 8).Draw(rt, "dims")
		vecGen := rapid.SliceOfN(rapid.Float32Range(-1, 1), dims, dims)
		a.Vector = vecGen.Draw(rt, "vecA")
		b.Vector = vecGen.Draw(rt, "vecB")

		if got, rev := embedded.Score(&a, &b), embedded.Score(&b, &a); got != rev {
			rt.Errorf("embedding asymmetric: %v != %v", got, rev)
		}
	})
}

// Every pair score stays in [0,1].
func TestProperty_ScoreBounded(t *testing.T) {
	lexical := LexicalProvider{cfg: DefaultConfig()}

	rapid.Check(t, func(rt *rapid.T) {
		a := NewDocument("a", textGen.Draw(rt, "textA"))
		b := NewDocument("b", textGen.Draw(rt, "textB"))

		got := lexical.Score(&a, &b)
		if got < 0 || got > 1 {
			rt.Errorf("score %v outside [0,1]", got)
		}
	})
}

// The edge set for a batch is reproducible run to run, and never
// contains a self-edge.
func TestProperty_FindSimilarDeterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		msgs := make([]model.ScoredMessage, n)
		for i := range msgs {
			msgs[i] = scored(rapid.StringMatching(`id[0-9]{4}`).Draw(rt, "id"), textGen.Draw(rt, "text"))
			msgs[i].ID = msgs[i].ID + string(rune('a'+i)) // ids unique within the batch
		}

		matcher, err := NewMatcher(nil, DefaultConfig())
		if err != nil {
			rt.Fatalf("matcher: %v", err)
		}

		first, err := matcher.FindSimilar(context.Background(), msgs)
		if err != nil {
			rt.Fatalf("first run: %v", err)
		}
		second, err := matcher.FindSimilar(context.Background(), msgs)
		if err != nil {
			rt.Fatalf("second run: %v", err)
		}

		if len(first) != len(second) {
			rt.Fatalf("edge count differs: %d != %d", len(first), len(second))
		}
		for i := range first {
			if first[i].SourceID == first[i].TargetID {
				rt.Errorf("self edge on %q", first[i].SourceID)
			}
			if first[i].Score != second[i].Score ||
				first[i].SourceID != second[i].SourceID ||
				first[i].TargetID != second[i].TargetID {
				rt.Errorf("edge %d differs between runs", i)
			}
		}
	})
}
