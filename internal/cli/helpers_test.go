package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/models"
)

func parsedCommand(t *testing.T, args ...string) *FlagParser {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("title", "", "")
	cmd.Flags().String("due", "", "")
	cmd.Flags().Float64("grade", 0, "")
	cmd.Flags().Int("credits", 0, "")
	cmd.Flags().StringSlice("tag", nil, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return NewFlagParser(cmd)
}

func TestParseString(t *testing.T) {
	p := parsedCommand(t, "--title", "  Plan trip  ")
	got, err := p.ParseString("title")
	require.NoError(t, err)
	assert.Equal(t, "Plan trip", got)

	_, err = parsedCommand(t, "--title", "   ").ParseString("title")
	assert.EqualError(t, err, "--title is required")
}

func TestParseDate(t *testing.T) {
	got, err := parsedCommand(t).ParseDate("due")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parsedCommand(t, "--due", "2025-03-09").ParseDate("due")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local), *got)
	assert.Equal(t, "2025-03-09", FormatDate(got))
	assert.Equal(t, "-", FormatDate(nil))

	_, err = parsedCommand(t, "--due", "09/03/2025").ParseDate("due")
	assert.Error(t, err)
}

func TestParseFloatOptional(t *testing.T) {
	got, err := parsedCommand(t).ParseFloatOptional("grade")
	require.NoError(t, err)
	assert.Nil(t, got, "unset flag should be nil, not zero")

	got, err = parsedCommand(t, "--grade", "0").ParseFloatOptional("grade")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)
}

func TestParseStringSlice(t *testing.T) {
	p := parsedCommand(t, "--tag", "a,b", "--tag", "c")
	assert.Equal(t, []string{"a", "b", "c"}, p.ParseStringSlice("tag"))
}

func TestParseEnum(t *testing.T) {
	got, err := ParseEnum("status", " In-Progress ", models.TaskStatuses)
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, got)

	got, err = ParseEnum("status", "", models.TaskStatuses)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseEnum("status", "blocked", models.TaskStatuses)
	assert.ErrorContains(t, err, "invalid status 'blocked' (must be: todo, in-progress, done)")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", ShortID("3f2a9c1e-0000-4000-8000-000000000000"))
	assert.Equal(t, "abc", ShortID("abc"))
}
