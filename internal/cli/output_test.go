package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/lifeos/internal/services/task"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestSuccessModes(t *testing.T) {
	data := map[string]any{"id": "abc", "title": "Stretch"}
	human := func(w io.Writer) { fmt.Fprintln(w, "Stretch created") }

	t.Run("human", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, false)
		require.NoError(t, f.Success(data, []string{"abc"}, human))
		assert.Equal(t, "Stretch created\n", out.String())
	})

	t.Run("quiet prints ids", func(t *testing.T) {
		f, out, _ := newTestFormatter(false, true)
		require.NoError(t, f.Success(data, []string{"abc", "def"}, human))
		assert.Equal(t, "abc\ndef\n", out.String())
	})

	t.Run("json envelope", func(t *testing.T) {
		f, out, _ := newTestFormatter(true, false)
		require.NoError(t, f.Success(data, []string{"abc"}, human))

		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, true, got["success"])
		assert.Equal(t, "Stretch", got["data"].(map[string]any)["title"])
	})
}

func TestFail(t *testing.T) {
	t.Run("human goes to stderr", func(t *testing.T) {
		f, out, errOut := newTestFormatter(false, false)
		err := f.Fail(task.ErrTaskNotFound, "Use 'lifeos task list'")

		assert.Equal(t, ExitNotFound, ExitCode(err))
		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "Error: task not found")
		assert.Contains(t, errOut.String(), "Suggestion: Use 'lifeos task list'")
	})

	t.Run("json goes to stdout", func(t *testing.T) {
		f, out, errOut := newTestFormatter(true, false)
		err := f.Fail(errors.New("boom"), "")

		assert.Equal(t, ExitError, ExitCode(err))
		assert.Empty(t, errOut.String())

		var got struct {
			Success bool `json:"success"`
			Error   struct {
				Code       string `json:"code"`
				Message    string `json:"message"`
				Suggestion string `json:"suggestion"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.False(t, got.Success)
		assert.Equal(t, "ERROR", got.Error.Code)
		assert.Equal(t, "boom", got.Error.Message)
		assert.Empty(t, got.Error.Suggestion)
	})
}

func TestUsage(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	err := f.Usage(errors.New("--title is required"), "")

	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Equal(t, "Error: --title is required\n", errOut.String())
}
