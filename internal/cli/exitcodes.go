package cli

import (
	"errors"

	"github.com/thenoetrevino/lifeos/internal/services/freelancing"
	"github.com/thenoetrevino/lifeos/internal/services/note"
	"github.com/thenoetrevino/lifeos/internal/services/programming"
	"github.com/thenoetrevino/lifeos/internal/services/task"
	"github.com/thenoetrevino/lifeos/internal/services/university"
	"github.com/thenoetrevino/lifeos/internal/storage"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or malformed flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input to import, unknown storage keys.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid statuses, out-of-range progress.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code for a failed command. The error
// has already been reported to the user when it is returned.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code a command error maps to
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	code, _ := Classify(err)
	return code
}

var notFound = []error{
	task.ErrTaskNotFound,
	programming.ErrLearningItemNotFound,
	programming.ErrSkillNotFound,
	programming.ErrToolNotFound,
	programming.ErrProjectNotFound,
	freelancing.ErrProjectNotFound,
	freelancing.ErrTaskNotFound,
	university.ErrSubjectNotFound,
	university.ErrExamNotFound,
	university.ErrEntryNotFound,
	note.ErrNoteNotFound,
}

var invalid = []error{
	task.ErrEmptyTitle,
	task.ErrInvalidTask,
	task.ErrInvalidStatus,
	task.ErrInvalidTaskID,
	programming.ErrInvalidID,
	programming.ErrEmptyTitle,
	programming.ErrEmptyName,
	programming.ErrInvalidLearningItem,
	programming.ErrInvalidProgress,
	programming.ErrInvalidStatus,
	programming.ErrInvalidSkill,
	programming.ErrInvalidTool,
	programming.ErrInvalidProject,
	freelancing.ErrInvalidProjectID,
	freelancing.ErrInvalidTaskID,
	freelancing.ErrEmptyName,
	freelancing.ErrEmptyTitle,
	freelancing.ErrInvalidProject,
	freelancing.ErrInvalidTask,
	freelancing.ErrInvalidStatus,
	university.ErrInvalidID,
	university.ErrEmptyName,
	university.ErrEmptyTitle,
	university.ErrInvalidSubject,
	university.ErrInvalidExam,
	university.ErrInvalidEntry,
	note.ErrInvalidNoteID,
	note.ErrEmptyTitle,
	note.ErrInvalidNote,
}

// Classify maps an error to an exit code and a machine-readable error code
func Classify(err error) (int, string) {
	for _, target := range notFound {
		if errors.Is(err, target) {
			return ExitNotFound, "NOT_FOUND"
		}
	}
	for _, target := range invalid {
		if errors.Is(err, target) {
			return ExitValidation, "VALIDATION_ERROR"
		}
	}
	if errors.Is(err, storage.ErrUnknownKey) || errors.Is(err, storage.ErrInvalidBackup) {
		return ExitDataErr, "DATA_ERROR"
	}
	return ExitError, "ERROR"
}
