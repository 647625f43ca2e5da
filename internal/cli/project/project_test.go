package project

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

func TestProjectLifecycle(t *testing.T) {
	_, a := clitest.SetupCLITest(t)
	ctx := context.Background()

	res, err := clitest.ExecuteCLICommand(t, a, ProjectCmd(), []string{
		"add", "--name", "Website", "--client", "Acme", "--rate", "80", "--deadline", "2025-09-01", "--quiet",
	})
	require.NoError(t, err)
	projectID := strings.TrimSpace(res.Stdout)

	p, err := a.FreelancingService.GetProject(ctx, projectID)
	require.NoError(t, err)
	assert.Equal(t, models.FreelanceStatus("lead"), p.Status)
	assert.InDelta(t, 80, p.HourlyRate, 0.001)
	require.NotNil(t, p.Deadline)

	res, err = clitest.ExecuteCLICommand(t, a, ProjectCmd(), []string{"task-add", projectID, "--title", "Wireframes", "--quiet"})
	require.NoError(t, err)
	taskID := strings.TrimSpace(res.Stdout)
	_, err = clitest.ExecuteCLICommand(t, a, ProjectCmd(), []string{"task-add", projectID, "--title", "Copy"})
	require.NoError(t, err)

	res, err = clitest.ExecuteCLICommand(t, a, ProjectCmd(), []string{"task-move", projectID, taskID, "done"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "moved to done")

	res, err = clitest.ExecuteCLICommand(t, a, ProjectCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "Website for Acme")
	assert.Contains(t, res.Stdout, " 50%")
	assert.Contains(t, res.Stdout, "(2 tasks)")
}

func TestProjectErrors(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"add without name", []string{"add", "--client", "Acme"}, cli.ExitUsage},
		{"add with unknown status", []string{"add", "--name", "x", "--status", "paused"}, cli.ExitUsage},
		{"task-add to missing project", []string{"task-add", "missing", "--title", "x"}, cli.ExitNotFound},
		{"task-move with bad status", []string{"task-move", "p", "t", "blocked"}, cli.ExitUsage},
		{"task-move in missing project", []string{"task-move", "p", "t", "done"}, cli.ExitNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, a, ProjectCmd(), tt.args)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}
}

func TestListEmpty(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	res, err := clitest.ExecuteCLICommand(t, a, ProjectCmd(), []string{"list"})
	require.NoError(t, err)
	assert.Contains(t, res.Stdout, "No projects found")
}
