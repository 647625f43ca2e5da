package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// DateLayout is the format accepted by date flags
const DateLayout = "2006-01-02"

// Run resolves the CLI for cmd, hands it to fn and closes it afterwards.
// Initialization failures are reported through the formatter.
func Run(cmd *cobra.Command, fn func(ctx context.Context, c *CLI, f *OutputFormatter) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := NewFormatter(cmd)

	cliInstance, err := GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "Check the data_path setting or LIFEOS_DB")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	return fn(ctx, cliInstance, formatter)
}

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// Changed reports whether the user set the flag
func (p *FlagParser) Changed(flagName string) bool {
	return p.cmd.Flags().Changed(flagName)
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) string {
	value, _ := p.cmd.Flags().GetString(flagName)
	return strings.TrimSpace(value)
}

// ParseStringSlice extracts a repeatable or comma separated flag
func (p *FlagParser) ParseStringSlice(flagName string) []string {
	values, _ := p.cmd.Flags().GetStringSlice(flagName)
	return values
}

// ParseDate extracts an optional YYYY-MM-DD flag in local time
func (p *FlagParser) ParseDate(flagName string) (*time.Time, error) {
	raw := p.ParseStringOptional(flagName)
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DateLayout, raw, time.Local)
	if err != nil {
		return nil, fmt.Errorf("--%s must be a date like 2025-01-31, got %q", flagName, raw)
	}
	return &d, nil
}

// ParseFloatOptional returns the flag's value, or nil when it was not set
func (p *FlagParser) ParseFloatOptional(flagName string) (*float64, error) {
	if !p.Changed(flagName) {
		return nil, nil
	}
	v, err := p.cmd.Flags().GetFloat64(flagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return &v, nil
}

// ParseInt extracts an int flag
func (p *FlagParser) ParseInt(flagName string) (int, error) {
	v, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	return v, nil
}

// ParseEnum validates value against allowed, case-insensitively. An empty
// value is returned as is so services can apply their defaults.
func ParseEnum[T ~string](flagName, value string, allowed []T) (T, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", nil
	}
	if slices.Contains(allowed, T(value)) {
		return T(value), nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", fmt.Errorf("invalid %s '%s' (must be: %s)", flagName, value, strings.Join(names, ", "))
}

// FormatDate renders an optional date for human output
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(DateLayout)
}

// ShortID abbreviates a UUID for human output
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
