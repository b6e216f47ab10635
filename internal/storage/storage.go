// Package storage handles the prompts file on disk: locating the library
// directory, seeding a starter file on first run, and splitting the
// markdown source into templates.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwestlund/promptdeck/internal/errors"
	"github.com/mwestlund/promptdeck/internal/models"
)

// defaultPrompts seeds a fresh library with templates demonstrating the
// placeholder syntax.
const defaultPrompts = `## Examples/Greeting
Write a short greeting email to {name|recipient name} about {topic}.

## Examples/Review/Checklist
Review {area|module or file}, and list the {random|"security" "performance" "usability"} risks you find.
`

// Storage handles all file system access for the template library.
type Storage struct {
	rootPath string
}

// NewStorage creates a storage instance rooted at rootPath. An empty
// rootPath falls back to PROMPTDECK_DIR, then ~/.promptdeck.
func NewStorage(rootPath string) (*Storage, error) {
	if rootPath == "" {
		rootPath = os.Getenv("PROMPTDECK_DIR")
	}
	if rootPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		rootPath = filepath.Join(homeDir, ".promptdeck")
	}
	return &Storage{rootPath: rootPath}, nil
}

// GetBaseDir returns the library directory.
func (s *Storage) GetBaseDir() string {
	return s.rootPath
}

// PromptsPath returns the path of the backing markdown file.
func (s *Storage) PromptsPath() string {
	return filepath.Join(s.rootPath, "prompts.md")
}

// EnsurePromptsFile creates the library directory and a starter prompts
// file if none exists yet, and returns the file's path.
func (s *Storage) EnsurePromptsFile() (string, error) {
	path := s.PromptsPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(s.rootPath, 0755); err != nil {
		return "", errors.StorageError(fmt.Sprintf("create directory %s", s.rootPath), err)
	}
	if err := os.WriteFile(path, []byte(defaultPrompts), 0644); err != nil {
		return "", errors.StorageError(fmt.Sprintf("create prompts file %s", path), err)
	}
	return path, nil
}

// LoadTemplates reads and splits the prompts file. A file with no `## `
// heading is a load error; anomalies inside bodies are not, they stay
// literal text.
func (s *Storage) LoadTemplates() ([]models.Template, error) {
	path, err := s.EnsurePromptsFile()
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.StorageError(fmt.Sprintf("read %s", path), err)
	}
	templates := ParseTemplates(string(content))
	if len(templates) == 0 {
		return nil, errors.NoTemplatesError(path)
	}
	return templates, nil
}

// ParseTemplates splits markdown source into templates. A line beginning
// with exactly `##` followed by a space or tab opens a new template named
// by the trimmed remainder of that line; subsequent lines up to the next
// heading (or end of input) form the body, with exactly one trailing line
// terminator stripped. Lines before the first heading are discarded.
func ParseTemplates(source string) []models.Template {
	lines := strings.Split(source, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var templates []models.Template
	var name string
	var body strings.Builder
	active := false

	flush := func() {
		if !active {
			return
		}
		templates = append(templates, models.Template{
			Name: name,
			Body: trimTrailingNewline(body.String()),
		})
		body.Reset()
	}

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if title, ok := parseHeading(line); ok {
			flush()
			name = title
			active = true
			continue
		}
		if active {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	flush()
	return templates
}

// parseHeading recognizes `## Title` lines. A third `#` or a missing
// space/tab after `##` disqualifies the line, as does an empty title.
func parseHeading(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "##")
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
		return "", false
	}
	title := strings.TrimSpace(rest)
	if title == "" {
		return "", false
	}
	return title, true
}

func trimTrailingNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
