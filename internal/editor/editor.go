// Package editor resolves and builds the external text editor command
// used to hand-edit the prompts file.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mwestlund/promptdeck/internal/errors"
)

// Resolve returns the editor command line: the config override when set,
// otherwise $EDITOR.
func Resolve(override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return override, nil
	}
	if value := os.Getenv("EDITOR"); strings.TrimSpace(value) != "" {
		return value, nil
	}
	return "", errors.EditorError("EDITOR is not set; set it or add `editor:` to config.yaml")
}

// Command builds the command for editing path. The editor value is split
// on whitespace: the first word is the binary, the rest are arguments, and
// the file path is appended last.
func Command(editorCmd, path string) (*exec.Cmd, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return nil, errors.EditorError("editor command is empty")
	}
	args := append(parts[1:], path)
	return exec.Command(parts[0], args...), nil
}
