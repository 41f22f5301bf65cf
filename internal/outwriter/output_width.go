// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/orbweave/orbweave/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableDetailWidth calculates the maximum width for the free-text
// detail column in table output based on terminal width.
func GetMaxTableDetailWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (rank, date, kind, strength,
	// label, duration) plus table borders, separators and padding.
	baseWidth := 55

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable detail width
		return 12
	}
	if available > 60 {
		// Maximum detail width to keep rows on one line
		return 60
	}
	return available
}

// truncateDetail truncates free text to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for "..." and at least one rune.
func truncateDetail(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}
