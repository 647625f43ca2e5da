package adapters

import (
	"slices"

	"github.com/thenoetrevino/lifeos/internal/kanban"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

var learningTitles = map[models.LearningStatus]string{
	models.LearningPlanned:    "Planned",
	models.LearningInProgress: "In Progress",
	models.LearningCompleted:  "Completed",
}

// LearningItemColumns partitions learning items by status in stored order
func LearningItemColumns(items []models.LearningItem) []kanban.Column[models.LearningItem] {
	columns := make([]kanban.Column[models.LearningItem], len(models.LearningStatuses))
	for i, status := range models.LearningStatuses {
		columns[i] = kanban.Column[models.LearningItem]{
			ID:    string(status),
			Title: learningTitles[status],
			Items: []models.LearningItem{},
			Color: statusColor(string(status)),
		}
	}
	for _, item := range items {
		i := slices.Index(models.LearningStatuses, item.Status)
		if i < 0 {
			i = 0
		}
		columns[i].Items = append(columns[i].Items, item)
	}
	return columns
}

// LearningItemCard builds the board card for a learning item with its
// progress bar below the badges.
func LearningItemCard(item models.LearningItem, h Handlers[models.LearningItem]) viewmodel.CardProps {
	badges := []viewmodel.CardBadge{{Label: string(item.Type), Variant: viewmodel.BadgeSecondary}}
	if item.URL != "" {
		badges = append(badges, viewmodel.CardBadge{Label: "link", Variant: viewmodel.BadgeOutline, Icon: "↗"})
	}

	actions := []viewmodel.CardAction{{Label: "Edit", Icon: "✎", OnClick: bind(h.OnEdit, item)}}
	if item.Status != models.LearningCompleted {
		actions = append(actions, viewmodel.CardAction{Label: "Progress +10%", Icon: "+", OnClick: bind(h.OnAdvance, item)})
	}
	actions = append(actions, deleteAction(h, item))

	return viewmodel.CardProps{
		Title:       item.Title,
		Description: item.Notes,
		Badges:      badges,
		Progress:    viewmodel.Percent(float64(item.Progress)),
		Actions:     actions,
	}
}
