// Package service provides the business logic shared by the TUI and the
// CLI: loading the template collection, building the display tree, fuzzy
// search, and one-shot rendering.
package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mwestlund/promptdeck/internal/config"
	"github.com/mwestlund/promptdeck/internal/errors"
	"github.com/mwestlund/promptdeck/internal/models"
	"github.com/mwestlund/promptdeck/internal/storage"
	"github.com/mwestlund/promptdeck/internal/template"
	"github.com/mwestlund/promptdeck/internal/tree"
)

// Service owns the current template collection and its derived tree. All
// access is synchronous; the collection is replaced wholesale on Reload.
type Service struct {
	storage   *storage.Storage
	config    *config.Config
	templates []models.Template
	treeItems []models.TreeItem
}

// NewService creates a service rooted at the default library directory
// (or PROMPTDECK_DIR). The template collection is empty until the first
// Reload.
func NewService() (*Service, error) {
	store, err := storage.NewStorage("")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cfg, err := config.Load(store.GetBaseDir())
	if err != nil {
		// The config file is optional; a broken one should not keep the
		// app from starting.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = &config.Config{}
	}

	return &Service{storage: store, config: cfg}, nil
}

// Reload re-reads the prompts file, replaces the template collection, and
// rebuilds the tree. On error the previous collection is kept.
func (s *Service) Reload() error {
	templates, err := s.storage.LoadTemplates()
	if err != nil {
		return err
	}
	s.templates = templates
	s.treeItems = tree.BuildTreeItems(templates)
	return nil
}

// Templates returns the current template collection.
func (s *Service) Templates() []models.Template {
	return s.templates
}

// TreeItems returns the flattened display tree.
func (s *Service) TreeItems() []models.TreeItem {
	return s.treeItems
}

// Template returns the template at index, if it exists.
func (s *Service) Template(index int) (models.Template, bool) {
	if index < 0 || index >= len(s.templates) {
		return models.Template{}, false
	}
	return s.templates[index], true
}

// GetTemplate finds a template by its exact heading name.
func (s *Service) GetTemplate(name string) (models.Template, error) {
	for _, tmpl := range s.templates {
		if tmpl.Name == name {
			return tmpl, nil
		}
	}
	return models.Template{}, errors.NotFoundError(name)
}

// SearchTemplates fuzzy-matches query against template names, best match
// first. An empty query returns the whole collection.
func (s *Service) SearchTemplates(query string) []models.Template {
	if strings.TrimSpace(query) == "" {
		return s.templates
	}
	matches := fuzzy.Find(query, s.templateNames())
	results := make([]models.Template, 0, len(matches))
	for _, match := range matches {
		results = append(results, s.templates[match.Index])
	}
	return results
}

// FilterItems returns the tree items to display for a filter query: the
// full tree for an empty query, otherwise a flat list of fuzzy-matching
// templates under their full names.
func (s *Service) FilterItems(query string) []models.TreeItem {
	if strings.TrimSpace(query) == "" {
		return s.treeItems
	}
	matches := fuzzy.Find(query, s.templateNames())
	items := make([]models.TreeItem, 0, len(matches))
	for _, match := range matches {
		index := match.Index
		items = append(items, models.TreeItem{
			Label:         s.templates[index].Name,
			TemplateIndex: &index,
		})
	}
	return items
}

// RenderTemplate renders a template body with the given variable values.
// Unfilled placeholders keep their raw spans; random placeholders resolve
// to a fresh pick.
func (s *Service) RenderTemplate(tmpl models.Template, vars map[string]string) string {
	tokens := template.Tokenize(tmpl.Body)
	fields := template.ExtractFields(tokens)
	for i := range fields {
		if value, ok := vars[fields[i].Name]; ok {
			fields[i].Value = value
		}
	}
	return template.Render(tokens, fields)
}

// PromptsPath returns the path of the backing markdown file.
func (s *Service) PromptsPath() string {
	return s.storage.PromptsPath()
}

// EditorOverride returns the configured editor command, if any.
func (s *Service) EditorOverride() string {
	return s.config.Editor
}

// MarkdownStyle returns the configured glamour style, if any.
func (s *Service) MarkdownStyle() string {
	return s.config.MarkdownStyle
}

func (s *Service) templateNames() []string {
	names := make([]string, len(s.templates))
	for i, tmpl := range s.templates {
		names[i] = tmpl.Name
	}
	return names
}
