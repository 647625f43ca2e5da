package adapters

import (
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/viewmodel"
)

// NoteCard builds the list card for a note
func NoteCard(n models.Note, h Handlers[models.Note]) viewmodel.CardProps {
	var badges []viewmodel.CardBadge
	if n.Pinned {
		badges = append(badges, viewmodel.CardBadge{Label: "pinned", Variant: viewmodel.BadgeDefault, Icon: "★"})
	}
	for _, tag := range n.Tags {
		badges = append(badges, viewmodel.CardBadge{Label: "#" + tag, Variant: viewmodel.BadgeOutline})
	}

	pin := "Pin"
	if n.Pinned {
		pin = "Unpin"
	}

	return viewmodel.CardProps{
		Title:       n.Title,
		Description: n.Content,
		Badges:      badges,
		Footer:      "edited " + n.LastModified().Format("Jan 2 15:04"),
		OnClick:     bind(h.OnOpen, n),
		Actions: []viewmodel.CardAction{
			{Label: "Open", Icon: "▤", OnClick: bind(h.OnOpen, n)},
			{Label: pin, Icon: "★", OnClick: bind(h.OnTogglePin, n)},
			deleteAction(h, n),
		},
	}
}
