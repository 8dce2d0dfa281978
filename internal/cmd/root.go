package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"biao/pkg/config"
	"biao/pkg/gitrepo"
	"biao/pkg/label"
)

var rootCmd = &cobra.Command{
	Use:   "biao",
	Short: "A CLI tool for managing GitHub repository labels",
	Long: `Biao is a command-line tool for managing GitHub repository labels.
It wraps the authenticated gh CLI to list, create, update and delete labels,
and can apply declarative TOML documents or built-in templates to reconcile
a repository's label set in one run.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(authCmd)
}

// newLabelClient resolves the repository from git metadata and builds the
// gateway for it. Every repository-scoped command goes through here, so
// precondition failures (not a repo, no origin, bad remote URL) surface
// before any gh invocation.
func newLabelClient() (*label.Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load biao config: %w", err)
	}

	repo, err := gitrepo.Resolve(".", cfg.Remote())
	if err != nil {
		return nil, err
	}

	return label.NewClient(repo.Owner, repo.Name), nil
}
