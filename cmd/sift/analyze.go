package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chatsift/chatsift/internal/cli"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <batch.json>",
		Short: "Classify, score, and cluster a batch of messages",
		Long: `Analyze reads a JSON array of message records, runs the triage
pipeline over it, prints a summary report, and optionally writes the
full result document for downstream tooling.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("output", "o", "", "write the full result document to this file")
	cmd.Flags().String("rules", "", "category rules file (default: built-in rules)")
	cmd.Flags().Float64("threshold", 0, "similarity threshold override")
	cmd.Flags().Int("min-support", 0, "suggestion minimum support override")
	cmd.Flags().Bool("embeddings", false, "enable embedding-based similarity")

	_ = viper.BindPFlag("rules_path", cmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("embedding.enabled", cmd.Flags().Lookup("embeddings"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetFloat64("threshold"); v > 0 {
		cfg.Similarity.Threshold = v
	}
	if v, _ := cmd.Flags().GetInt("min-support"); v > 0 {
		cfg.Suggest.MinSupport = v
	}

	set, err := loadRules(cfg)
	if err != nil {
		return err
	}

	batch, err := loadBatch(args[0])
	if err != nil {
		return err
	}

	// The pairwise pass dominates runtime on large batches, so that is
	// where the progress bar lives.
	var bar *progressbar.ProgressBar
	eng, err := buildEngine(cfg, set, func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("comparing messages"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	})
	if err != nil {
		return err
	}

	result, err := eng.Analyze(cmd.Context(), batch)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	cli.WriteReport(cmd.OutOrStdout(), result, set)

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := writeResult(out, result); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Result written to %s\n", cli.SuccessIcon, out)
	}
	return nil
}
