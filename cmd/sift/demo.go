package main

import (
	"github.com/spf13/cobra"

	"github.com/chatsift/chatsift/internal/cli"
	"github.com/chatsift/chatsift/internal/model"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the pipeline over a built-in sample batch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			set, err := loadRules(cfg)
			if err != nil {
				return err
			}
			eng, err := buildEngine(cfg, set, nil)
			if err != nil {
				return err
			}

			result, err := eng.Analyze(cmd.Context(), SampleBatch())
			if err != nil {
				return err
			}
			cli.WriteReport(cmd.OutOrStdout(), result, set)
			return nil
		},
	}
}

// SampleBatch returns a representative batch of engineering chat
// messages. Timestamps are fixed offsets from an arbitrary base so demo
// output is reproducible.
func SampleBatch() []model.RawMessage {
	const base = 1700000000.0
	return []model.RawMessage{
		{
			ID: "msg_001", User: "john_doe", Channel: "alerts",
			Text:      "URGENT: Production server is down! Users can't login. Need immediate help!",
			Timestamp: base - 1*3600,
			Reactions: []string{"fire", "eyes", "sos"},
		},
		{
			ID: "msg_002", User: "jane_smith", Channel: "dev-help",
			Text:      "Can someone help me understand how the OAuth authentication flow works? I'm getting confused with the redirect URLs.",
			Timestamp: base - 2*3600,
			Reactions: []string{"question"},
		},
		{
			ID: "msg_003", User: "mike_wilson", Channel: "bug-reports",
			Text:      "Found a critical bug in the user registration form. When users enter special characters, the form crashes with a 500 error. Stack trace attached.",
			Timestamp: base - 3*3600,
			Reactions: []string{"bug", "thumbsup"},
		},
		{
			ID: "msg_004", User: "sarah_johnson", Channel: "feature-requests",
			Text:      "Feature request: Can we add a dark mode toggle to the user settings page? Many users have been asking for this enhancement.",
			Timestamp: base - 4*3600,
			Reactions: []string{"bulb", "thumbsup", "moon"},
		},
		{
			ID: "msg_005", User: "alex_brown", Channel: "devops",
			Text:      "The CI/CD pipeline failed again on the staging deployment. Looks like there's an issue with the Docker build process. Can someone investigate?",
			Timestamp: base - 5*3600,
			Reactions: []string{"wrench"},
		},
		{
			ID: "msg_006", User: "alex_brown", Channel: "access-requests",
			Text:      "I need access to the production database for debugging. Can someone grant me read-only permissions? My username is alex.brown.",
			Timestamp: base - 6*3600,
			Reactions: []string{"lock"},
		},
		{
			ID: "msg_007", User: "admin", Channel: "announcements",
			Text:      "FYI: Scheduled maintenance window this Sunday 2-4 AM EST. The main application will be temporarily unavailable. Please plan accordingly.",
			Timestamp: base - 12*3600,
			Reactions: []string{"loudspeaker", "thumbsup"},
		},
		{
			ID: "msg_008", User: "tom_anderson", Channel: "bug-reports",
			Text:      "Another authentication issue here. Users are getting randomly logged out after 10 minutes. This might be related to the session timeout configuration we changed last week.",
			Timestamp: base - 8*3600,
			Reactions: []string{"lock", "bug"},
		},
		{
			ID: "msg_009", User: "lisa_martinez", Channel: "compliance",
			Text:      "How do we handle GDPR data export requests? Do we have a standard process for this? Customer is asking for all their data.",
			Timestamp: base - 10*3600,
			Reactions: []string{"scales", "question"},
		},
		{
			ID: "msg_010", User: "david_lee", Channel: "api-development",
			Text:      "New API endpoint is ready for testing! Can someone from QA please review the documentation and run the test cases? Link in thread.",
			Timestamp: base - 14*3600,
			Reactions: []string{"checkmark", "clipboard"},
		},
	}
}
