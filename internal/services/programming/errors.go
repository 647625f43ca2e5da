package programming

import "errors"

// Learning item errors
var (
	ErrEmptyTitle           = errors.New("learning item title cannot be empty")
	ErrInvalidLearningItem  = errors.New("invalid learning item")
	ErrInvalidStatus        = errors.New("invalid learning status")
	ErrInvalidProgress      = errors.New("progress must be between 0 and 100")
	ErrLearningItemNotFound = errors.New("learning item not found")
)

// Skill, tool and coding project errors
var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidSkill    = errors.New("invalid skill")
	ErrSkillNotFound   = errors.New("skill not found")
	ErrInvalidTool     = errors.New("invalid tool")
	ErrToolNotFound    = errors.New("tool not found")
	ErrInvalidProject  = errors.New("invalid coding project")
	ErrProjectNotFound = errors.New("coding project not found")
	ErrInvalidID       = errors.New("invalid ID")
)
