package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth [login|status|logout]",
	Short: "Manage GitHub authentication via gh",
	Long: `Manage GitHub authentication.

Biao delegates all authentication to the gh CLI; these subcommands run
the matching 'gh auth' command with your terminal attached. With no
argument, 'login' is run.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"login", "status", "logout"},
	RunE:      runAuth,
}

func runAuth(_ *cobra.Command, args []string) error {
	action := "login"
	if len(args) == 1 {
		action = args[0]
	}

	gh := exec.Command("gh", "auth", action)
	gh.Stdin = os.Stdin
	gh.Stdout = os.Stdout
	gh.Stderr = os.Stderr

	if err := gh.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("gh auth %s failed", action)
		}
		return fmt.Errorf("failed to run gh: %w (is the GitHub CLI installed?)", err)
	}

	return nil
}
