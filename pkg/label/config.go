package label

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// NewLabelSpec declares a label to create. Color is required; absence of a
// color distinguishes an update-only entry, which is not valid here.
type NewLabelSpec struct {
	Name           string `toml:"name"`
	Color          string `toml:"color"`
	Description    string `toml:"description"`
	SkipIfExists   bool   `toml:"skip_if_exists"`
	UpdateIfExists bool   `toml:"update_if_exists"`
}

// UpdateLabelSpec declares a mutation of an existing label. At least one of
// NewName, Color, Description must be set.
type UpdateLabelSpec struct {
	Name        string  `toml:"name"`
	NewName     string  `toml:"new_name"`
	Color       string  `toml:"color"`
	Description *string `toml:"description"`
}

// TemplateLabelSpec is the template-document superset: color optional
// (present means create-or-update, absent means update-only) and
// UpdateIfMatch lists legacy names to consolidate into this label.
type TemplateLabelSpec struct {
	Name           string   `toml:"name"`
	Color          string   `toml:"color"`
	Description    *string  `toml:"description"`
	UpdateIfMatch  []string `toml:"update_if_match"`
	SkipIfExists   bool     `toml:"skip_if_exists"`
	UpdateIfExists bool     `toml:"update_if_exists"`
}

// BatchConfig is the parsed desired-state document. User files use the
// [[new]]/[[update]] tables; templates use [[labels]]. Both forms share
// this one schema and parser.
type BatchConfig struct {
	Description string              `toml:"description"`
	Delete      []string            `toml:"delete"`
	New         []NewLabelSpec      `toml:"new"`
	Update      []UpdateLabelSpec   `toml:"update"`
	Labels      []TemplateLabelSpec `toml:"labels"`
}

// ParseBatchConfig parses and validates a TOML desired-state document.
// Colors are normalized in place. Validation failure is fatal for the
// whole batch: no gateway call happens on invalid input.
func ParseBatchConfig(data []byte) (*BatchConfig, error) {
	var cfg BatchConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, NewError(ErrorTypeParse, fmt.Sprintf("failed to parse TOML config: %v", err), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadBatchConfigFromFile reads and parses a desired-state document.
func LoadBatchConfigFromFile(path string) (*BatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseBatchConfig(data)
}

// HasActions reports whether the document declares any work.
func (c *BatchConfig) HasActions() bool {
	return len(c.Delete) > 0 || len(c.New) > 0 || len(c.Update) > 0 || len(c.Labels) > 0
}

// Validate checks the document against the schema rules and normalizes
// colors. All violations are collected before reporting.
func (c *BatchConfig) Validate() error {
	var errs ValidationErrors

	for i := range c.New {
		spec := &c.New[i]
		if spec.Name == "" {
			errs.Add(fmt.Sprintf("new[%d].name", i), "", "label name is required")
		}
		if spec.Color == "" {
			errs.Add(fmt.Sprintf("new[%d].color", i), "", fmt.Sprintf("color is required for new label %q", spec.Name))
		} else if normalized, err := NormalizeColor(spec.Color); err != nil {
			errs.Add(fmt.Sprintf("new[%d].color", i), spec.Color, err.Error())
		} else {
			spec.Color = normalized
		}
		if spec.SkipIfExists && spec.UpdateIfExists {
			errs.Add(fmt.Sprintf("new[%d]", i), spec.Name, "skip_if_exists and update_if_exists cannot both be set")
		}
	}

	for i := range c.Update {
		spec := &c.Update[i]
		if spec.Name == "" {
			errs.Add(fmt.Sprintf("update[%d].name", i), "", "label name is required")
		}
		if spec.NewName == "" && spec.Color == "" && spec.Description == nil {
			errs.Add(fmt.Sprintf("update[%d]", i), spec.Name, "at least one of new_name, color, description is required")
		}
		if spec.Color != "" {
			if normalized, err := NormalizeColor(spec.Color); err != nil {
				errs.Add(fmt.Sprintf("update[%d].color", i), spec.Color, err.Error())
			} else {
				spec.Color = normalized
			}
		}
	}

	for i := range c.Labels {
		spec := &c.Labels[i]
		if spec.Name == "" {
			errs.Add(fmt.Sprintf("labels[%d].name", i), "", "label name is required")
		}
		if spec.Color != "" {
			if normalized, err := NormalizeColor(spec.Color); err != nil {
				errs.Add(fmt.Sprintf("labels[%d].color", i), spec.Color, err.Error())
			} else {
				spec.Color = normalized
			}
		}
		if spec.SkipIfExists && spec.UpdateIfExists {
			errs.Add(fmt.Sprintf("labels[%d]", i), spec.Name, "skip_if_exists and update_if_exists cannot both be set")
		}
	}

	for i, name := range c.Delete {
		if name == "" {
			errs.Add(fmt.Sprintf("delete[%d]", i), "", "label name cannot be empty")
		}
	}

	if errs.HasErrors() {
		return &Error{
			Type:    ErrorTypeValidation,
			Message: errs.Error(),
			Cause:   errs,
		}
	}

	return nil
}

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// NormalizeColor strips an optional leading '#', enforces 6 hex digits and
// lowercases the result.
func NormalizeColor(color string) (string, error) {
	color = strings.TrimPrefix(color, "#")

	if len(color) != 6 {
		return "", fmt.Errorf("color must be 6 hex digits (e.g., ff0000)")
	}
	if !hexColorPattern.MatchString(color) {
		return "", fmt.Errorf("invalid hex color format")
	}

	return strings.ToLower(color), nil
}
