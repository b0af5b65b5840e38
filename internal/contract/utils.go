package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Share label text values.
const (
	DominantValue = "Dominant"
	MajorValue    = "Major"
	MinorValue    = "Minor"
	RareValue     = "Rare"
)

// Colors used for share labels in table output.
var (
	DominantColor = color.New(color.FgRed, color.Bold)
	MajorColor    = color.New(color.FgYellow)
	MinorColor    = color.New(color.FgCyan)
	RareColor     = color.New(color.FgWhite)
)

// GetPlainLabel returns a text label describing how much of its group a
// share represents:
// - Dominant (>=0.50)
// - Major (>=0.25)
// - Minor (>=0.05)
// - Rare (<0.05)
func GetPlainLabel(share float64) string {
	switch {
	case share >= 0.50:
		return DominantValue
	case share >= 0.25:
		return MajorValue
	case share >= 0.05:
		return MinorValue
	default:
		return RareValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(share float64) string {
	text := GetPlainLabel(share)

	switch text {
	case DominantValue:
		return DominantColor.Sprint(text)
	case MajorValue:
		return MajorColor.Sprint(text)
	case MinorValue:
		return MinorColor.Sprint(text)
	default: // "Rare"
		return RareColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error to stderr and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for run tracking.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".votetab_runs.db"
	}
	return filepath.Join(homeDir, ".votetab_runs.db")
}
