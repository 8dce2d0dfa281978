package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biao/pkg/label"
)

var createDescription string

var createCmd = &cobra.Command{
	Use:   "create <name> <color>",
	Short: "Create a new label",
	Long: `Create a new label in the repository.

The color is a 6-digit hex value without the leading '#' (a leading '#'
is accepted and stripped).

Examples:
  biao create bug d73a49
  biao create "help wanted" 008672 --description "Extra attention is needed"`,
	Args: cobra.ExactArgs(2),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Label description")
}

func runCreate(_ *cobra.Command, args []string) error {
	name := args[0]

	color, err := label.NormalizeColor(args[1])
	if err != nil {
		return err
	}

	client, err := newLabelClient()
	if err != nil {
		return err
	}

	req := label.CreateRequest{Name: name, Color: color}
	if createDescription != "" {
		req.Description = &createDescription
	}

	fmt.Printf("Repository: %s\n", client.RepoURL())

	created, err := client.Create(req)
	if err != nil {
		return err
	}

	fmt.Println("\n✓ Label created successfully")
	printLabel(created)
	return nil
}
