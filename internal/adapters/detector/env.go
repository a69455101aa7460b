// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeLinear prints one progress line per package.
	ModeLinear
	// ModeQuiet suppresses progress, leaving only log lines and the report.
	ModeQuiet
)

// DetectEnvironment returns the recommended output mode. Terminals and CI
// logs get progress lines; a redirected stdout outside CI gets quiet output.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if isTTY || isCI {
		return ModeLinear
	}
	return ModeQuiet
}

// ParseMode maps the --output flag to a mode.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "auto", "":
		return ModeAuto, nil
	case "linear":
		return ModeLinear, nil
	case "quiet":
		return ModeQuiet, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "output", flag)
	}
}

// ResolveMode applies the user's explicit choice over auto-detection.
func ResolveMode(autoDetected, requested OutputMode) OutputMode {
	if requested == ModeAuto {
		return autoDetected
	}
	return requested
}
