package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/vahanlens/vahanlens/schema"
)

// Growth label constants.
const (
	SurgeValue   = "Surge"   // Strong positive growth
	GainValue    = "Gain"    // Positive growth
	FlatValue    = "Flat"    // Near-zero growth
	DeclineValue = "Decline" // Negative growth
	NoDataValue  = "n/a"     // Growth not computable
)

// Color variables for console output.
var (
	SurgeColor   = color.New(color.FgGreen, color.Bold) // surgeColor marks breakout growth.
	GainColor    = color.New(color.FgGreen)             // gainColor marks healthy growth.
	FlatColor    = color.New(color.FgYellow)            // flatColor marks stagnation.
	DeclineColor = color.New(color.FgRed, color.Bold)   // declineColor marks contraction.
	NoDataColor  = color.New(color.Faint)               // noDataColor marks missing baselines.
)

// GetPlainGrowthLabel returns a plain text label classifying a growth
// percentage. This is the core logic used for CSV, JSON, and table printing.
func GetPlainGrowthLabel(growth schema.Percent) string {
	if !growth.Valid {
		return NoDataValue
	}
	switch {
	case growth.Value >= 25:
		return SurgeValue
	case growth.Value >= 2:
		return GainValue
	case growth.Value > -2:
		return FlatValue
	default:
		return DeclineValue
	}
}

// GetColorGrowthLabel returns a colored text label for console output (table).
// It uses GetPlainGrowthLabel to determine the string, and then applies the
// appropriate color.
func GetColorGrowthLabel(growth schema.Percent) string {
	text := GetPlainGrowthLabel(growth)

	switch text {
	case SurgeValue:
		return SurgeColor.Sprint(text)
	case GainValue:
		return GainColor.Sprint(text)
	case FlatValue:
		return FlatColor.Sprint(text)
	case DeclineValue:
		return DeclineColor.Sprint(text)
	default: // "n/a"
		return NoDataColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetStoreDBFilePath returns the path to the SQLite DB file for record storage.
func GetStoreDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".vahanlens.db"
	}
	return filepath.Join(homeDir, ".vahanlens.db")
}

// TruncateName truncates a display name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is space for both content and the ellipsis.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
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
