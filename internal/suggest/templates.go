package suggest

import (
	"fmt"

	"github.com/chatsift/chatsift/internal/model"
)

// Template describes the automation opportunity associated with a
// message category.
type Template struct {
	PatternName string
	BaseLevel   model.PriorityLevel
	Impact      string
	Effort      string
}

// defaultTemplates maps categories to their suggestion templates.
var defaultTemplates = map[string]Template{
	"access_request": {
		PatternName: "Self-service access portal",
		BaseLevel:   model.LevelHigh,
		Impact:      "Reduces response time by 80%",
		Effort:      "Medium",
	},
	"question": {
		PatternName: "Automated FAQ bot",
		BaseLevel:   model.LevelMedium,
		Impact:      "Reduces support load by 60%",
		Effort:      "High",
	},
	"bug_report": {
		PatternName: "Automated bug triage",
		BaseLevel:   model.LevelHigh,
		Impact:      "Improves response time by 50%",
		Effort:      "Medium",
	},
	"deployment": {
		PatternName: "Deployment status automation",
		BaseLevel:   model.LevelMedium,
		Impact:      "Improves team awareness",
		Effort:      "Low",
	},
	"urgent": {
		PatternName: "Urgent issue escalation workflow",
		BaseLevel:   model.LevelCritical,
		Impact:      "Prevents service downtime",
		Effort:      "Low",
	},
	"feature_request": {
		PatternName: "Feature request intake form",
		BaseLevel:   model.LevelMedium,
		Impact:      "Keeps the backlog structured",
		Effort:      "Low",
	},
}

// templateFor returns the template for a category, falling back to a
// generic workflow suggestion for custom categories.
func templateFor(category string) Template {
	if t, ok := defaultTemplates[category]; ok {
		return t
	}
	return Template{
		PatternName: fmt.Sprintf("Recurring %s workflow", category),
		BaseLevel:   model.LevelLow,
		Impact:      "Reduces repeated manual handling",
		Effort:      "Medium",
	}
}
