package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chatsift/chatsift/internal/engine"
	"github.com/chatsift/chatsift/internal/rules"
)

// WriteReport renders a human-readable batch summary: category
// distribution, priority bands, and the automation suggestions with
// their supporting evidence.
func WriteReport(w io.Writer, result *engine.Result, set *rules.Set) {
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%s Batch analysis (%d messages)",
		ChartIcon, result.Stats.TotalMessages)))

	writeCategories(w, result, set)
	writePriorities(w, result)
	writeSuggestions(w, result)
}

func writeCategories(w io.Writer, result *engine.Result, set *rules.Set) {
	fmt.Fprintln(w, BoldStyle.Render("Categories"))

	names := make([]string, 0, len(result.Stats.Categories))
	for name := range result.Stats.Categories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := result.Stats.Categories[names[i]], result.Stats.Categories[names[j]]
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		color := ""
		if rule, ok := set.Lookup(name); ok {
			color = rule.Color
		}
		fmt.Fprintf(w, "  %-40s %d\n",
			RenderCategory(name, color), result.Stats.Categories[name])
	}
	fmt.Fprintln(w)
}

func writePriorities(w io.Writer, result *engine.Result) {
	d := result.Stats.Priorities
	fmt.Fprintln(w, BoldStyle.Render("Priority"))
	fmt.Fprintf(w, "  %s %d   %s %d   %s %d   avg %.2f\n\n",
		ErrorStyle.Render("high"), d.High,
		WarningStyle.Render("medium"), d.Medium,
		SubtleStyle.Render("low"), d.Low,
		result.Stats.AveragePriority)

	if result.Stats.EdgeCount > 0 {
		fmt.Fprintf(w, "%s %d similar message pair(s) found\n\n",
			LinkIcon, result.Stats.EdgeCount)
	}
}

func writeSuggestions(w io.Writer, result *engine.Result) {
	if len(result.Suggestions) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No automation suggestions for this batch."))
		return
	}

	fmt.Fprintln(w, BoldStyle.Render(fmt.Sprintf("%s Automation suggestions", RobotIcon)))
	for _, s := range result.Suggestions {
		fmt.Fprintf(w, "  [%s] %s\n", RenderLevel(s.PriorityLevel.String()), s.PatternName)
		fmt.Fprintf(w, "      %s\n", SubtleStyle.Render(fmt.Sprintf(
			"%d supporting messages · impact: %s · effort: %s",
			s.Support(), s.EstimatedImpact, s.EstimatedEffort)))
		if len(s.SupportingMessageIDs) > 0 {
			ids := s.SupportingMessageIDs
			preview := strings.Join(ids[:min(len(ids), 5)], ", ")
			if len(ids) > 5 {
				preview += ", …"
			}
			fmt.Fprintf(w, "      %s\n", SubtleStyle.Render("messages: "+preview))
		}
	}
}
