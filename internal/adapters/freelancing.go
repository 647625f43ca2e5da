package adapters

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

var projectTaskTitles = map[models.ProjectTaskStatus]string{
	models.ProjectTaskTodo:       "To Do",
	models.ProjectTaskInProgress: "In Progress",
	models.ProjectTaskReview:     "Review",
	models.ProjectTaskDone:       "Done",
}

// ProjectTaskColumns partitions one project's tasks by status, keeping the
// order they are stored in
func ProjectTaskColumns(p models.FreelanceProject) []kanban.Column[models.ProjectTask] {
	columns := make([]kanban.Column[models.ProjectTask], len(models.ProjectTaskStatuses))
	for i, status := range models.ProjectTaskStatuses {
		columns[i] = kanban.Column[models.ProjectTask]{
			ID:    string(status),
			Title: projectTaskTitles[status],
			Items: []models.ProjectTask{},
			Color: statusColor(string(status)),
		}
	}
	for _, t := range p.Tasks {
		i := slices.Index(models.ProjectTaskStatuses, t.Status)
		if i < 0 {
			i = 0
		}
		columns[i].Items = append(columns[i].Items, t)
	}
	return columns
}

// ProjectTaskCard builds the board card for a project task
func ProjectTaskCard(t models.ProjectTask, h Handlers[models.ProjectTask]) viewmodel.CardProps {
	var badges []viewmodel.CardBadge
	if b, ok := priorityBadge(t.Priority); ok {
		badges = append(badges, b)
	}

	actions := []viewmodel.CardAction{{Label: "Edit", Icon: "✎", OnClick: bind(h.OnEdit, t)}}
	if i := slices.Index(models.ProjectTaskStatuses, t.Status); i >= 0 && i < len(models.ProjectTaskStatuses)-1 {
		next := models.ProjectTaskStatuses[i+1]
		actions = append(actions, viewmodel.CardAction{
			Label:   "Move to " + projectTaskTitles[next],
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
	}
}

func projectStatusBadge(s models.FreelanceStatus) viewmodel.CardBadge {
	switch s {
	case models.FreelanceActive:
		return viewmodel.CardBadge{Label: "active", Variant: viewmodel.BadgeSuccess}
	case models.FreelanceOnHold:
		return viewmodel.CardBadge{Label: "on hold", Variant: viewmodel.BadgeWarning}
	case models.FreelanceCompleted:
		return viewmodel.CardBadge{Label: "completed", Variant: viewmodel.BadgeDefault, Icon: "✓"}
	default:
		return viewmodel.CardBadge{Label: string(s), Variant: viewmodel.BadgeSecondary}
	}
}

// ProjectCard builds the list card for a freelancing project. Projects with
// tasks get a progress bar.
func ProjectCard(p models.FreelanceProject, h Handlers[models.FreelanceProject]) viewmodel.CardProps {
	badges := []viewmodel.CardBadge{projectStatusBadge(p.Status)}
	if p.Client != "" {
		badges = append(badges, viewmodel.CardBadge{Label: p.Client, Variant: viewmodel.BadgeOutline})
	}
	if p.HourlyRate > 0 {
		badges = append(badges, viewmodel.CardBadge{Label: money(p.HourlyRate) + "/h", Variant: viewmodel.BadgeSecondary})
	}
	if p.Budget > 0 {
		badges = append(badges, viewmodel.CardBadge{Label: money(p.Budget), Variant: viewmodel.BadgeSecondary})
	}
	if p.Deadline != nil {
		badges = append(badges, viewmodel.CardBadge{Label: "due " + formatDate(*p.Deadline), Variant: viewmodel.BadgeOutline})
	}

	done := 0
	for _, t := range p.Tasks {
		if t.Status == models.ProjectTaskDone {
			done++
		}
	}
	var progress *float64
	if len(p.Tasks) > 0 {
		progress = viewmodel.Percent(p.Progress())
	}

	return viewmodel.CardProps{
		Title:       p.Name,
		Description: p.Description,
		Badges:      badges,
		Progress:    progress,
		Footer:      fmt.Sprintf("%d/%d tasks", done, len(p.Tasks)),
		OnClick:     bind(h.OnOpen, p),
		Actions: []viewmodel.CardAction{
			{Label: "Open board", Icon: "▦", OnClick: bind(h.OnOpen, p)},
			{Label: "Edit", Icon: "✎", OnClick: bind(h.OnEdit, p)},
			deleteAction(h, p),
		},
	}
}
