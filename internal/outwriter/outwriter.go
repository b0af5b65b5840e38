// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/votetab/internal/contract"
	"golang.org/x/term"
)

// GetMaxValueWidth calculates the maximum width for value cells in table
// output based on terminal width and table configuration.
func GetMaxValueWidth(cfg *contract.Config) int {
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

	// Reserve space for the numeric columns, borders and padding
	available := termWidth - 40
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// truncateValue truncates a cell value to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to leave room for both the ellipsis and content.
func truncateValue(value string, maxWidth int) string {
	runes := []rune(value)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}
