package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biao/pkg/label"
)

var (
	updateNewName     string
	updateColor       string
	updateDescription string
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update an existing label",
	Long: `Update an existing label's name, color or description.

At least one of --new-name, --color or --description is required; fields
not given keep their current values.

Examples:
  biao update bug --color b60205
  biao update "help wanted" --new-name needs-help --description "Looking for contributors"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateNewName, "new-name", "", "New label name")
	updateCmd.Flags().StringVar(&updateColor, "color", "", "New color (hex without #)")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := label.UpdateRequest{}
	if updateNewName != "" {
		req.NewName = &updateNewName
	}
	if updateColor != "" {
		color, err := label.NormalizeColor(updateColor)
		if err != nil {
			return err
		}
		req.Color = &color
	}
	if cmd.Flags().Changed("description") {
		req.Description = &updateDescription
	}

	if req.IsEmpty() {
		return fmt.Errorf("nothing to update: provide at least one of --new-name, --color, --description")
	}

	client, err := newLabelClient()
	if err != nil {
		return err
	}

	fmt.Printf("Repository: %s\n", client.RepoURL())

	updated, err := client.Update(args[0], req)
	if err != nil {
		return err
	}

	fmt.Println("\n✓ Label updated successfully")
	printLabel(updated)
	return nil
}
