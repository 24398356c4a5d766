package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chatsift/chatsift/internal/cli"
	"github.com/chatsift/chatsift/internal/config"
	"github.com/chatsift/chatsift/internal/rules"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate category rules",
	}
	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesCheckCmd())
	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the configured category rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			set, err := loadRules(cfg)
			if err != nil {
				return err
			}

			for _, rule := range set.Rules() {
				cmd.Printf("%-40s boost=%.1f  keywords=%d  patterns=%d\n",
					cli.RenderCategory(rule.Name, rule.Color),
					rule.PriorityBoost, len(rule.Keywords), len(rule.Patterns))
			}
			return nil
		},
	}
}

func rulesCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <rules.yaml>",
		Short: "Validate a rules file without running the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := rules.Load(config.ExpandPath(args[0]))
			if err != nil {
				return fmt.Errorf("%s %w", cli.ErrorIcon, err)
			}
			cmd.Printf("%s %d categories OK\n", cli.SuccessIcon, set.Len())
			return nil
		},
	}
}
