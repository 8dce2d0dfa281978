// Package template resolves named label templates from an ordered list of
// sources: compiled-in defaults, the user template directory, and the
// system template directory. The first source that knows a name wins.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Info describes one available template.
type Info struct {
	Name        string
	Description string
	Origin      string // "built-in" or the directory the file was found in
}

// Source is one place templates can come from.
type Source interface {
	// List returns every template the source provides.
	List() ([]Info, error)

	// Get returns the template document text, and whether the source
	// knows the name at all.
	Get(name string) (string, bool)
}

// Provider searches sources in order; the first match wins for both
// lookup and listing.
type Provider struct {
	sources []Source
}

// New builds the default provider: built-in templates, then the user
// directory (~/.config/biao/templates), then any extra directories, then
// the system directory (/usr/local/share/biao/templates).
func New(extraDirs ...string) *Provider {
	sources := []Source{builtinSource{}}

	if home, err := os.UserHomeDir(); err == nil {
		sources = append(sources, dirSource{dir: filepath.Join(home, ".config", "biao", "templates")})
	}
	for _, dir := range extraDirs {
		if dir != "" {
			sources = append(sources, dirSource{dir: dir})
		}
	}
	sources = append(sources, dirSource{dir: "/usr/local/share/biao/templates"})

	return &Provider{sources: sources}
}

// NewWithSources builds a provider over an explicit source order.
func NewWithSources(sources ...Source) *Provider {
	return &Provider{sources: sources}
}

// List returns all available templates, deduplicated by name with
// first-found-wins across sources, sorted by name.
func (p *Provider) List() ([]Info, error) {
	seen := make(map[string]bool)
	var templates []Info

	for _, source := range p.sources {
		infos, err := source.List()
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			if seen[info.Name] {
				continue
			}
			seen[info.Name] = true
			templates = append(templates, info)
		}
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})

	return templates, nil
}

// Get resolves a template name to its document text, trying each source
// in order.
func (p *Provider) Get(name string) (string, error) {
	for _, source := range p.sources {
		if content, ok := source.Get(name); ok {
			return content, nil
		}
	}

	return "", fmt.Errorf("template %q not found. Use 'biao template list' to see available templates", name)
}

// dirSource serves *.toml files from one directory. A missing directory
// is an empty source, not an error.
type dirSource struct {
	dir string
}

// templateMetadata is the slice of the document schema the lister needs.
type templateMetadata struct {
	Description string `toml:"description"`
}

func (s dirSource) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read template directory %s: %w", s.dir, err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".toml")
		description := "User template"
		if data, err := os.ReadFile(filepath.Join(s.dir, entry.Name())); err == nil {
			var meta templateMetadata
			if toml.Unmarshal(data, &meta) == nil && meta.Description != "" {
				description = meta.Description
			}
		}

		infos = append(infos, Info{Name: name, Description: description, Origin: s.dir})
	}

	return infos, nil
}

func (s dirSource) Get(name string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, name+".toml"))
	if err != nil {
		return "", false
	}
	return string(data), true
}
