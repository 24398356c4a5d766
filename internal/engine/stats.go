package engine

import (
	"sort"

	"github.com/chatsift/chatsift/internal/model"
)

// Distribution buckets messages by priority band.
type Distribution struct {
	High   int `json:"high"`   // priority > 0.7
	Medium int `json:"medium"` // 0.3 < priority <= 0.7
	Low    int `json:"low"`    // priority <= 0.3
}

// Count pairs a name with its occurrence count.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes an analyzed batch for the presentation layer.
type Stats struct {
	TotalMessages   int            `json:"total_messages"`
	Categories      map[string]int `json:"categories"`
	Priorities      Distribution   `json:"priority_distribution"`
	AveragePriority float64        `json:"avg_priority"`
	TopUsers        []Count        `json:"top_users"`
	TopChannels     []Count        `json:"top_channels"`
	EdgeCount       int            `json:"edge_count"`
	SuggestionCount int            `json:"suggestion_count"`
}

const topN = 5

// BuildStats computes batch-level analytics from pipeline outputs.
func BuildStats(msgs []model.ScoredMessage, edges []model.SimilarityEdge, suggestions []model.AutomationSuggestion) Stats {
	stats := Stats{
		TotalMessages:   len(msgs),
		Categories:      make(map[string]int),
		EdgeCount:       len(edges),
		SuggestionCount: len(suggestions),
	}

	users := make(map[string]int)
	channels := make(map[string]int)
	total := 0.0
	for _, m := range msgs {
		stats.Categories[m.Category]++
		users[m.User]++
		channels[m.Channel]++
		total += m.Priority

		switch {
		case m.Priority > 0.7:
			stats.Priorities.High++
		case m.Priority > 0.3:
			stats.Priorities.Medium++
		default:
			stats.Priorities.Low++
		}
	}

	if len(msgs) > 0 {
		stats.AveragePriority = total / float64(len(msgs))
	}
	stats.TopUsers = topCounts(users)
	stats.TopChannels = topCounts(channels)

	return stats
}

// topCounts returns the topN entries, ordered by count descending then
// name ascending so output is deterministic.
func topCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for name, n := range m {
		counts = append(counts, Count{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	if len(counts) > topN {
		counts = counts[:topN]
	}
	return counts
}
