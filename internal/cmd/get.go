package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get a specific label",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(_ *cobra.Command, args []string) error {
	client, err := newLabelClient()
	if err != nil {
		return err
	}

	fmt.Printf("Repository: %s\n\n", client.RepoURL())

	l, err := client.Get(args[0])
	if err != nil {
		return err
	}

	printLabel(l)
	return nil
}
