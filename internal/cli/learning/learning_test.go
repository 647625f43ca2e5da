package learning

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/cli"
	"github.com/thenoetrevino/lifeos/internal/models"
	clitest "github.com/thenoetrevino/lifeos/internal/testutil/cli"
)

func TestAddAndList(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	res, err := clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"add", "--title", "Tour of Go", "--type", "tutorial", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(res.Stdout)

	item, err := a.ProgrammingService.GetLearningItem(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.LearningTutorial, item.Type)
	assert.Equal(t, models.LearningPlanned, item.Status)

	res, err = clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Tour of Go")
	assert.Contains(t, res.Stdout, "planned")
}

func TestAddDefaultsToCourse(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	res, err := clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"add", "--title", "Distributed systems", "--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, res.Stdout)["data"].(map[string]any)
	assert.Equal(t, "course", data["type"])
}

func TestAddRejectsUnknownType(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	res, err := clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"add", "--title", "x", "--type", "podcast"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	assert.Contains(t, res.Stderr, "invalid type")
}

func TestProgress(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	ctx := context.Background()
	res, err := clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"add", "--title", "SICP", "--type", "book", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(res.Stdout)

	tests := []struct {
		name       string
		percent    string
		wantCode   int
		wantStatus models.LearningStatus
	}{
		{"starting moves to in-progress", "30", cli.ExitSuccess, models.LearningInProgress},
		{"100 completes", "100", cli.ExitSuccess, models.LearningCompleted},
		{"out of range", "150", cli.ExitValidation, models.LearningCompleted},
		{"not a number", "half", cli.ExitUsage, models.LearningCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"progress", id, tt.percent})
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))

			item, err := a.ProgrammingService.GetLearningItem(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, item.Status)
		})
	}
}

func TestMove(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	res, err := clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"add", "--title", "Rust book", "--type", "book", "--quiet"})
	require.NoError(t, err)
	id := strings.TrimSpace(res.Stdout)

	_, err = clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"move", id, "completed"})
	require.NoError(t, err)

	item, err := a.ProgrammingService.GetLearningItem(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.LearningCompleted, item.Status)
	assert.Equal(t, 100, item.Progress)

	_, err = clitest.ExecuteCLICommand(t, a, LearningCmd(), []string{"move", "missing", "planned"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
