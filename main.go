package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/mwestlund/promptdeck/internal/cli"
	"github.com/mwestlund/promptdeck/internal/service"
	"github.com/mwestlund/promptdeck/internal/ui"
)

var version = "0.1.0"

func printHelp() {
	fmt.Printf(`promptdeck - fill-in-the-blanks prompt templates in your terminal

USAGE:
    promptdeck [OPTIONS] [COMMAND]

OPTIONS:
    --help      Show this help information
    --version   Print version information

COMMANDS:
    (no command)                            Start interactive TUI mode
    list, ls                                List templates as a tree
    show <name>                             Print a template's raw body
    search <query>                          Fuzzy-search template names
    render <name> [--var key=value ...]     Render a template to stdout
    copy <name> [--var key=value ...]       Render and copy to clipboard
    path                                    Print the prompts file path
    help                                    Show CLI command help

TEMPLATES:
    Templates live in a single markdown file. Every "## Title" heading
    starts a template; "/" segments in the title group templates into
    folders. Bodies may contain placeholders:

        {name}                   variable
        {name|description}       variable with a description
        {random|"a" "b" "c"}     random choice, rerollable in the TUI

EXAMPLES:
    promptdeck                                   # Start interactive mode
    promptdeck list                              # Show the template tree
    promptdeck render Examples/Greeting --var name=Ada
    promptdeck copy Examples/Greeting --var name=Ada --var topic=lunch

STORAGE:
    Default directory: ~/.promptdeck
    Override with: PROMPTDECK_DIR=<path>
`)
}

func main() {
	var showVersion bool
	var showHelp bool

	flag.BoolVar(&showVersion, "version", false, "Print version information")
	flag.BoolVar(&showHelp, "help", false, "Show help information")
	flag.Parse()

	if showHelp {
		printHelp()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("promptdeck version %s\n", version)
		os.Exit(0)
	}

	svc, err := service.NewService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Positional arguments mean CLI mode: execute one command and exit.
	args := flag.Args()
	if len(args) > 0 {
		cliHandler := cli.NewCLI(svc)
		if err := cliHandler.ExecuteCommand(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "promptdeck: stdout is not a terminal; see `promptdeck --help` for non-interactive commands")
		os.Exit(1)
	}

	p := tea.NewProgram(ui.NewModel(svc), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
