package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/huangsam/pepalyzer/schema"
)

// Signal weight label constants.
const (
	HighValue   = "High"   // Status-transition tier, reserved
	MediumValue = "Medium" // Content-based signals
	LowValue    = "Low"    // Informational
	NoneValue   = "None"   // Placeholder tier
)

// Color variables for console output.
var (
	HighColor   = color.New(color.FgRed, color.Bold) // highColor marks editorial moments worth a look.
	MediumColor = color.New(color.FgYellow)          // mediumColor represents standard caution, not bold.
	LowColor    = color.New(color.FgCyan)            // lowColor represents informational signal.
)

// GetPlainWeightLabel returns a plain text label for a signal weight tier.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainWeightLabel(weight int) string {
	switch {
	case weight >= schema.WeightHigh:
		return HighValue
	case weight >= schema.WeightMedium:
		return MediumValue
	case weight >= schema.WeightLow:
		return LowValue
	default:
		return NoneValue
	}
}

// GetColorWeightLabel returns a colored label for console output. It uses
// GetPlainWeightLabel to determine the string, then applies the color.
func GetColorWeightLabel(weight int) string {
	text := GetPlainWeightLabel(weight)

	switch text {
	case HighValue:
		return HighColor.Sprint(text)
	case MediumValue:
		return MediumColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
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
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}

// TruncateText shortens a string to maxWidth runes with a trailing ellipsis.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString interprets common yes/no spellings from flags and env vars.
func ParseBoolString(s string) (bool, error) {
	switch s {
	case "yes", "true", "1", "on", "y":
		return true, nil
	case "no", "false", "0", "off", "n":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %q", s)
	}
}
