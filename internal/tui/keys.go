package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/lifeos/internal/config"
)

// keyMap holds the key bindings built from the user's key mappings.
// Arrow keys always work alongside the configured navigation keys.
type keyMap struct {
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Advance    key.Binding
	Open       key.Binding
	TogglePin  key.Binding
	Increase   key.Binding
	Decrease   key.Binding
	NextAction key.Binding
	PrevAction key.Binding
	AddExam    key.Binding
	AddEntry   key.Binding

	PickUp     key.Binding
	CancelDrag key.Binding
	SaveForm   key.Binding

	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding

	Help key.Binding
	Quit key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(displayKey(keys[0]), help))
	}
	return keyMap{
		Add:        bind("add", km.AddItem),
		Edit:       bind("edit", km.EditItem),
		Delete:     bind("delete", km.DeleteItem),
		Advance:    bind("advance", km.AdvanceItem),
		Open:       bind("open / run action", km.OpenItem),
		TogglePin:  bind("pin note", km.TogglePin),
		Increase:   bind("progress +10%", km.IncreaseProgress),
		Decrease:   bind("progress -10%", km.DecreaseProgress),
		NextAction: bind("next card action", km.NextAction),
		PrevAction: bind("previous card action", km.PrevAction),
		AddExam:    bind("add exam", km.AddExam),
		AddEntry:   bind("add grade entry", km.AddEntry),

		PickUp:     bind("pick up / drop", km.PickUp),
		CancelDrag: bind("cancel", km.CancelDrag),
		SaveForm:   bind("save form", km.SaveForm),

		Left:    bind("left", km.PrevColumn, "left"),
		Right:   bind("right", km.NextColumn, "right"),
		Up:      bind("up", km.PrevItem, "up"),
		Down:    bind("down", km.NextItem, "down"),
		NextTab: bind("next tab", km.NextTab),
		PrevTab: bind("previous tab", km.PrevTab),
		Back:    bind("back", km.Back),

		Help: bind("help", km.ShowHelp),
		Quit: bind("quit", km.Quit, "ctrl+c"),
	}
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.PickUp, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.NextTab, k.PrevTab, k.Back},
		{k.Add, k.Edit, k.Delete, k.Advance, k.Open, k.NextAction, k.PrevAction},
		{k.PickUp, k.CancelDrag, k.Increase, k.Decrease, k.TogglePin, k.AddExam, k.AddEntry},
		{k.SaveForm, k.Help, k.Quit},
	}
}
