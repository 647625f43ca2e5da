package adapters

import (
	"cmp"
	"slices"
	"time"

	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

var taskColumnTitles = map[models.TaskStatus]string{
	models.TaskTodo:       "To Do",
	models.TaskInProgress: "In Progress",
	models.TaskDone:       "Done",
}

// StandaloneTaskColumns partitions tasks by status. Inside a column,
// in-progress tasks due today come first, then higher priority, then older.
func StandaloneTaskColumns(tasks []models.Task, now time.Time) []kanban.Column[models.Task] {
	columns := make([]kanban.Column[models.Task], len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		columns[i] = kanban.Column[models.Task]{
			ID:    string(status),
			Title: taskColumnTitles[status],
			Items: []models.Task{},
			Color: statusColor(string(status)),
		}
	}

	for _, t := range tasks {
		i := slices.Index(models.TaskStatuses, t.Status)
		if i < 0 {
			i = 0
		}
		columns[i].Items = append(columns[i].Items, t)
	}

	for i := range columns {
		slices.SortStableFunc(columns[i].Items, func(a, b models.Task) int {
			if c := cmp.Compare(urgentToday(b, now), urgentToday(a, now)); c != 0 {
				return c
			}
			if c := cmp.Compare(b.Priority.Rank(), a.Priority.Rank()); c != 0 {
				return c
			}
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}
	return columns
}

func urgentToday(t models.Task, now time.Time) int {
	if t.Status == models.TaskInProgress && t.IsDueOn(now) {
		return 1
	}
	return 0
}

// NextTaskStatus is the column a task advances to; ok is false for done tasks
func NextTaskStatus(s models.TaskStatus) (models.TaskStatus, bool) {
	i := slices.Index(models.TaskStatuses, s)
	if i < 0 || i == len(models.TaskStatuses)-1 {
		return "", false
	}
	return models.TaskStatuses[i+1], true
}

// TaskCard builds the board card for a standalone task
func TaskCard(t models.Task, now time.Time, h Handlers[models.Task]) viewmodel.CardProps {
	var badges []viewmodel.CardBadge
	if b, ok := priorityBadge(t.Priority); ok {
		badges = append(badges, b)
	}
	if t.DueDate != nil {
		switch {
		case t.IsOverdue(now):
			badges = append(badges, viewmodel.CardBadge{Label: "overdue " + formatDate(*t.DueDate), Variant: viewmodel.BadgeDanger, Icon: "!"})
		case t.IsDueOn(now):
			badges = append(badges, viewmodel.CardBadge{Label: "due today", Variant: viewmodel.BadgeWarning})
		default:
			badges = append(badges, viewmodel.CardBadge{Label: "due " + formatDate(*t.DueDate), Variant: viewmodel.BadgeOutline})
		}
	}

	actions := []viewmodel.CardAction{{Label: "Edit", Icon: "✎", OnClick: bind(h.OnEdit, t)}}
	if next, ok := NextTaskStatus(t.Status); ok {
		actions = append(actions, viewmodel.CardAction{
			Label:   "Move to " + taskColumnTitles[next],
			Icon:    "→",
			OnClick: bind(h.OnAdvance, t),
		})
	}
	actions = append(actions, deleteAction(h, t))

	return viewmodel.CardProps{
		Title:       t.Title,
		Description: t.Description,
		Badges:      badges,
		Actions:     actions,
		OnClick:     bind(h.OnOpen, t),
	}
}

// TaskOverlay is the drag preview: same content, no actions
func TaskOverlay(t models.Task, now time.Time) viewmodel.CardProps {
	p := TaskCard(t, now, Handlers[models.Task]{})
	p.Actions = nil
	return p
}
