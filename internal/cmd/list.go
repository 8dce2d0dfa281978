package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all labels in the repository",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	client, err := newLabelClient()
	if err != nil {
		return err
	}

	labels, err := client.List()
	if err != nil {
		return err
	}

	fmt.Printf("Repository: %s\n", client.RepoURL())
	if len(labels) == 0 {
		fmt.Println("No labels found.")
		return nil
	}

	fmt.Printf("%d labels found:\n\n", len(labels))
	for i := range labels {
		printLabel(&labels[i])
	}

	return nil
}
