package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"biao/pkg/config"
	"biao/pkg/fuzzy"
	"biao/pkg/label"
	"biao/pkg/template"
)

var (
	templateDryRun       bool
	templateSkipExisting bool
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Work with label templates",
	Long: `Work with label templates.

Templates are named TOML documents of labels. Built-in templates ship
with biao; your own live in ~/.config/biao/templates (plus any extra
directories from the biao config). When names collide, the first source
in that order wins.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a template's TOML document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplateShow,
}

var templateApplyCmd = &cobra.Command{
	Use:   "apply [name]",
	Short: "Apply a template to the current repository",
	Long: `Apply a named template to the current repository.

Without a name argument, the template is picked interactively. Template
labels reconcile toward the described end state: existing labels are
updated, legacy names listed in update_if_match are renamed, and
missing labels are created.

Examples:
  biao template apply standard
  biao template apply semantic --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplateApply,
}

func init() {
	templateApplyCmd.Flags().BoolVarP(&templateDryRun, "dry-run", "n", false, "Preview the plan without making changes")
	templateApplyCmd.Flags().BoolVarP(&templateSkipExisting, "skip-existing", "s", false, "Skip labels that already exist instead of failing")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateApplyCmd)
}

func newTemplateProvider() (*template.Provider, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load biao config: %w", err)
	}
	return template.New(cfg.Templates.Dirs...), nil
}

func runTemplateList(_ *cobra.Command, _ []string) error {
	provider, err := newTemplateProvider()
	if err != nil {
		return err
	}

	templates, err := provider.List()
	if err != nil {
		return err
	}

	if len(templates) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	fmt.Println("Available templates:")
	for _, t := range templates {
		fmt.Printf("  %-20s %s (%s)\n", t.Name, t.Description, t.Origin)
	}

	return nil
}

func runTemplateShow(_ *cobra.Command, args []string) error {
	provider, err := newTemplateProvider()
	if err != nil {
		return err
	}

	name, err := resolveTemplateName(provider, args)
	if err != nil {
		return err
	}

	content, err := provider.Get(name)
	if err != nil {
		return err
	}

	fmt.Print(content)
	return nil
}

func runTemplateApply(_ *cobra.Command, args []string) error {
	provider, err := newTemplateProvider()
	if err != nil {
		return err
	}

	name, err := resolveTemplateName(provider, args)
	if err != nil {
		return err
	}

	content, err := provider.Get(name)
	if err != nil {
		return err
	}

	batch, err := label.ParseBatchConfig([]byte(content))
	if err != nil {
		return fmt.Errorf("template %q: %w", name, err)
	}

	client, err := newLabelClient()
	if err != nil {
		return err
	}

	fmt.Printf("Repository: %s\n", client.RepoURL())
	fmt.Printf("Applying template: %s\n\n", name)

	return runBatch(client, batch, label.Options{
		DryRun:       templateDryRun,
		SkipExisting: templateSkipExisting,
	})
}

// resolveTemplateName takes the name from args or asks interactively.
func resolveTemplateName(provider *template.Provider, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	templates, err := provider.List()
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", fmt.Errorf("no templates found")
	}

	finder := fuzzy.New("Template:")
	for _, t := range templates {
		finder.AddOption(t.Name, t.Description)
	}

	return finder.Select()
}
