package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Items
	AddItem     string `yaml:"add_item"`
	EditItem    string `yaml:"edit_item"`
	DeleteItem  string `yaml:"delete_item"`
	AdvanceItem string `yaml:"advance_item"`
	OpenItem    string `yaml:"open_item"`
	TogglePin   string `yaml:"toggle_pin"`

	// Card action menu
	NextAction string `yaml:"next_action"`
	PrevAction string `yaml:"prev_action"`

	// University subject detail
	AddExam  string `yaml:"add_exam"`
	AddEntry string `yaml:"add_entry"`

	// Progress for learning items
	IncreaseProgress string `yaml:"increase_progress"`
	DecreaseProgress string `yaml:"decrease_progress"`

	// Drag and drop
	PickUp     string `yaml:"pick_up"`
	CancelDrag string `yaml:"cancel_drag"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`
	NextTab    string `yaml:"next_tab"`
	PrevTab    string `yaml:"prev_tab"`
	Back       string `yaml:"back"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Items
		AddItem:     "a",
		EditItem:    "e",
		DeleteItem:  "d",
		AdvanceItem: "n",
		OpenItem:    "enter",
		TogglePin:   "p",

		NextAction: "]",
		PrevAction: "[",

		AddExam:  "x",
		AddEntry: "g",

		IncreaseProgress: "+",
		DecreaseProgress: "-",

		// Drag and drop
		PickUp:     " ",
		CancelDrag: "esc",

		SaveForm: "ctrl+s",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",
		NextTab:    "tab",
		PrevTab:    "shift+tab",
		Back:       "backspace",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	base := defaults.fieldsByName()
	for name, field := range k.fieldsByName() {
		if *field == "" {
			*field = *base[name]
		}
	}
}

func (k *KeyMappings) fieldsByName() map[string]*string {
	return map[string]*string{
		"add_item":          &k.AddItem,
		"edit_item":         &k.EditItem,
		"delete_item":       &k.DeleteItem,
		"advance_item":      &k.AdvanceItem,
		"open_item":         &k.OpenItem,
		"toggle_pin":        &k.TogglePin,
		"next_action":       &k.NextAction,
		"prev_action":       &k.PrevAction,
		"add_exam":          &k.AddExam,
		"add_entry":         &k.AddEntry,
		"increase_progress": &k.IncreaseProgress,
		"decrease_progress": &k.DecreaseProgress,
		"pick_up":           &k.PickUp,
		"cancel_drag":       &k.CancelDrag,
		"save_form":         &k.SaveForm,
		"prev_column":       &k.PrevColumn,
		"next_column":       &k.NextColumn,
		"prev_item":         &k.PrevItem,
		"next_item":         &k.NextItem,
		"next_tab":          &k.NextTab,
		"prev_tab":          &k.PrevTab,
		"back":              &k.Back,
		"show_help":         &k.ShowHelp,
		"quit":              &k.Quit,
	}
}
