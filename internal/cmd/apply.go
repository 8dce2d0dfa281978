package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biao/pkg/config"
	"biao/pkg/label"
)

var (
	applyDryRun       bool
	applySkipExisting bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [file]",
	Short: "Apply label changes from a TOML config file",
	Long: `Apply label changes from a declarative TOML document.

The document lists labels to delete, create ([[new]] entries, color
required) and update ([[update]] entries). Deletions run first, then
creations, then updates, each in document order. Every item is applied
independently: a failure is recorded and the batch continues.

Examples:
  biao apply                       # defaults to labels.toml
  biao apply team-labels.toml
  biao apply team-labels.toml --dry-run
  biao apply team-labels.toml --skip-existing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "Preview the plan without making changes")
	applyCmd.Flags().BoolVarP(&applySkipExisting, "skip-existing", "s", false, "Skip labels that already exist instead of failing")
}

func runApply(_ *cobra.Command, args []string) error {
	toolCfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load biao config: %w", err)
	}

	file := toolCfg.DefaultConfigFile()
	if len(args) == 1 {
		file = args[0]
	}

	batch, err := label.LoadBatchConfigFromFile(file)
	if err != nil {
		return err
	}

	client, err := newLabelClient()
	if err != nil {
		return err
	}

	fmt.Printf("Repository: %s\n", client.RepoURL())
	fmt.Printf("Reading config from: %s\n\n", file)

	return runBatch(client, batch, label.Options{
		DryRun:       applyDryRun,
		SkipExisting: applySkipExisting || toolCfg.Apply.SkipExisting,
	})
}

// runBatch drives one reconciliation run and renders its results. Shared
// by apply and template apply.
func runBatch(client label.APIClient, batch *label.BatchConfig, opts label.Options) error {
	if !batch.HasActions() {
		fmt.Println("No actions to perform. Config file is empty.")
		return nil
	}

	if opts.DryRun {
		fmt.Println("=== DRY RUN MODE ===")
		fmt.Println("No changes will be made.")
		fmt.Println()
	}

	reconciler := label.NewReconciler(client)

	plan, err := reconciler.Plan(batch, opts)
	if err != nil {
		return err
	}

	summary := reconciler.Apply(plan)
	displaySummary(summary)

	if summary.HasFailures() {
		return fmt.Errorf("%d of %d operations failed", summary.Failed, len(summary.Results))
	}

	return nil
}
