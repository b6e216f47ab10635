// Package cli implements the non-interactive commands: listing, showing,
// searching, rendering, and copying templates from scripts or other tools.
package cli

import (
	"fmt"
	"strings"

	"github.com/mwestlund/promptdeck/internal/clipboard"
	"github.com/mwestlund/promptdeck/internal/service"
)

// CLI handles command-line operations.
type CLI struct {
	service *service.Service
}

// NewCLI creates a new CLI handler.
func NewCLI(svc *service.Service) *CLI {
	return &CLI{service: svc}
}

// ExecuteCommand dispatches a positional command with its arguments.
func (c *CLI) ExecuteCommand(args []string) error {
	if err := c.service.Reload(); err != nil {
		return err
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "list", "ls":
		return c.listTemplates()
	case "show":
		return c.showTemplate(rest)
	case "search":
		return c.searchTemplates(rest)
	case "render":
		return c.renderTemplate(rest, false)
	case "copy":
		return c.renderTemplate(rest, true)
	case "path":
		fmt.Println(c.service.PromptsPath())
		return nil
	case "help":
		c.printUsage()
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'promptdeck help')", command)
	}
}

// listTemplates prints the template tree as indented text. Folder rows
// get a trailing slash.
func (c *CLI) listTemplates() error {
	for _, item := range c.service.TreeItems() {
		label := item.Label
		if item.TemplateIndex == nil {
			label += "/"
		}
		fmt.Printf("%s%s\n", strings.Repeat("  ", item.Depth), label)
	}
	return nil
}

func (c *CLI) showTemplate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: promptdeck show <name>")
	}
	tmpl, err := c.service.GetTemplate(args[0])
	if err != nil {
		return err
	}
	fmt.Println(tmpl.Body)
	return nil
}

func (c *CLI) searchTemplates(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: promptdeck search <query>")
	}
	results := c.service.SearchTemplates(args[0])
	if len(results) == 0 {
		return fmt.Errorf("no templates matching %q", args[0])
	}
	for _, tmpl := range results {
		fmt.Println(tmpl.Name)
	}
	return nil
}

// renderTemplate renders a template with --var values to stdout, or to
// the clipboard when toClipboard is set. Unfilled placeholders stay as
// their raw `{...}` spans so the output documents what is still open.
func (c *CLI) renderTemplate(args []string, toClipboard bool) error {
	name, vars, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	tmpl, err := c.service.GetTemplate(name)
	if err != nil {
		return err
	}
	rendered := c.service.RenderTemplate(tmpl, vars)

	if toClipboard {
		if err := clipboard.Copy(rendered); err != nil {
			return err
		}
		fmt.Println("Copied to clipboard!")
		return nil
	}
	fmt.Println(rendered)
	return nil
}

// parseRenderArgs parses `<name> [--var key=value ...]`.
func parseRenderArgs(args []string) (string, map[string]string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("usage: promptdeck render <name> [--var key=value ...]")
	}
	name := args[0]
	vars := make(map[string]string)
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		if rest[i] != "--var" {
			return "", nil, fmt.Errorf("unexpected argument %q", rest[i])
		}
		i++
		if i >= len(rest) {
			return "", nil, fmt.Errorf("--var requires a key=value argument")
		}
		key, value, ok := strings.Cut(rest[i], "=")
		if !ok || key == "" {
			return "", nil, fmt.Errorf("invalid --var %q: expected key=value", rest[i])
		}
		vars[key] = value
	}
	return name, vars, nil
}

func (c *CLI) printUsage() {
	fmt.Print(`promptdeck commands:

    list, ls                                List templates as a tree
    show <name>                             Print a template's raw body
    search <query>                          Fuzzy-search template names
    render <name> [--var key=value ...]     Render a template to stdout
    copy <name> [--var key=value ...]       Render and copy to clipboard
    path                                    Print the prompts file path
    help                                    Show this help

Unfilled placeholders render as their original {...} spans.
`)
}
