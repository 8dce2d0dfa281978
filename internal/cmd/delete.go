package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"biao/pkg/fuzzy"
	"biao/pkg/label"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a label",
	Long: `Delete a label from the repository.

Without --force, a confirmation prompt is shown (which requires a
terminal). Without a name argument, the label is picked interactively
from the live set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(_ *cobra.Command, args []string) error {
	client, err := newLabelClient()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = pickLabel(client, "Delete label:")
		if err != nil {
			return err
		}
	}

	if !deleteForce {
		confirmed, err := confirmDelete(name, client.RepoURL())
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := client.Delete(name); err != nil {
		return err
	}

	fmt.Printf("✓ Label '%s' deleted from %s\n", name, client.RepoURL())
	return nil
}

func confirmDelete(name, repo string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("refusing to delete %q without confirmation: no terminal attached (use --force)", name)
	}

	fmt.Printf("Are you sure you want to delete '%s' from %s? [y/N]: ", name, repo)

	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(input), "y"), nil
}

// pickLabel lets the user select one label from the live set.
func pickLabel(client label.APIClient, prompt string) (string, error) {
	labels, err := client.List()
	if err != nil {
		return "", err
	}
	if len(labels) == 0 {
		return "", fmt.Errorf("no labels found")
	}

	finder := fuzzy.New(prompt)
	for _, l := range labels {
		finder.AddOption(l.Name, l.Description)
	}

	return finder.Select()
}
