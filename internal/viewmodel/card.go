// Package viewmodel describes cards and columns independently of how the
// terminal renders them. Adapters produce these values; the tui components
// draw them.
package viewmodel

// BadgeVariant selects a badge's color treatment
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
	BadgeSuccess     BadgeVariant = "success"
	BadgeWarning     BadgeVariant = "warning"
	BadgeDanger      BadgeVariant = "danger"
)

// CardBadge is a short label shown under a card's title
type CardBadge struct {
	Label   string
	Variant BadgeVariant
	Icon    string
}

// ActionVariant selects an action's styling. It never changes behavior.
type ActionVariant string

const (
	ActionDefault     ActionVariant = "default"
	ActionDestructive ActionVariant = "destructive"
)

// CardAction is one entry of a card's action menu.
// Separator draws a divider before this action unless it is rendered first.
type CardAction struct {
	Label     string
	Icon      string
	OnClick   func()
	Variant   ActionVariant
	Separator bool
}

// CardProps describes the content of a KanbanCard or ListCard
type CardProps struct {
	Title       string
	Description string
	Badges      []CardBadge
	Actions     []CardAction

	// Progress, when set, is drawn as a bar below the badges. It is a
	// percentage and is clamped to 0..100 only when drawn.
	Progress *float64

	// Footer is a muted line below the progress bar
	Footer string

	// Children is pre-rendered content placed last
	Children string

	// OnClick runs when the card body is activated
	OnClick func()

	// Width is the outer width including the border; 0 uses the default
	Width int
}

// BodyTarget is the click target for the card body rather than an action
const BodyTarget = -1

// Click activates target: an action index runs only that action, BodyTarget
// runs the card's OnClick. Activating an action never also activates the
// card. It reports whether a handler ran.
func (p CardProps) Click(target int) bool {
	if target == BodyTarget {
		if p.OnClick == nil {
			return false
		}
		p.OnClick()
		return true
	}
	if target < 0 || target >= len(p.Actions) {
		return false
	}
	if fn := p.Actions[target].OnClick; fn != nil {
		fn()
		return true
	}
	return false
}

// MenuEntry is one rendered row of an action menu
type MenuEntry struct {
	Divider bool
	Action  int // index into the actions slice; unused for dividers
}

// MenuEntries lays out actions with their dividers. A divider is emitted
// before each flagged action except the first.
func MenuEntries(actions []CardAction) []MenuEntry {
	entries := make([]MenuEntry, 0, len(actions))
	for i, a := range actions {
		if a.Separator && i > 0 {
			entries = append(entries, MenuEntry{Divider: true})
		}
		entries = append(entries, MenuEntry{Action: i})
	}
	return entries
}

// Percent is a helper for the Progress field
func Percent(v float64) *float64 {
	return &v
}
