package model

// SimilarityMode records which signals produced an edge's score.
type SimilarityMode string

// Similarity mode constants.
const (
	// SimilarityModeLexical means the score came from lexical overlap only.
	SimilarityModeLexical SimilarityMode = "lexical"
	// SimilarityModeCombined means lexical and embedding signals were blended.
	SimilarityModeCombined SimilarityMode = "lexical+embedding"
)

// SimilarityEdge relates two messages judged to be near-duplicates or
// closely related. The relation is symmetric and stored once per
// unordered pair: SourceID is always the message that appeared earlier
// in the batch. An edge never pairs a message with itself.
type SimilarityEdge struct {
	SourceID      string         `json:"source_id"`
	TargetID      string         `json:"target_id"`
	Score         float64        `json:"score"`
	SharedPhrases []string       `json:"shared_phrases"`
	Mode          SimilarityMode `json:"mode"`
}
