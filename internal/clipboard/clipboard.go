// Package clipboard copies rendered output to the system clipboard. It
// tries the portable clipboard library first and falls back to the common
// OS utilities when that fails (headless sessions, missing backends).
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mwestlund/promptdeck/internal/errors"
)

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	switch runtime.GOOS {
	case "darwin":
		return runWithStdin(text, "pbcopy")
	case "windows":
		return runWithStdin(text, "cmd", "/c", "clip")
	case "linux":
		return copyLinux(text)
	default:
		return errors.ClipboardError(fmt.Errorf("unsupported platform: %s", runtime.GOOS))
	}
}

// copyLinux walks the usual suspects in order: xclip, xsel, then wl-copy
// for Wayland.
func copyLinux(text string) error {
	candidates := [][]string{
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
		{"wl-copy"},
	}

	var lastErr error
	for _, candidate := range candidates {
		if !isCommandAvailable(candidate[0]) {
			continue
		}
		if err := runWithStdin(text, candidate[0], candidate[1:]...); err == nil {
			return nil
		} else {
			lastErr = fmt.Errorf("%s failed: %w", candidate[0], err)
		}
	}

	if lastErr != nil {
		return errors.ClipboardError(lastErr)
	}
	return errors.ClipboardError(fmt.Errorf("no clipboard utility found; install xclip, xsel, or wl-clipboard"))
}

func runWithStdin(text, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return errors.ClipboardError(fmt.Errorf("%s: %w", name, err))
	}
	return nil
}

// isCommandAvailable checks if a command is available in PATH.
func isCommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
