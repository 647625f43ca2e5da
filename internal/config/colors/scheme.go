package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations and destructive actions

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DragBorder     string `yaml:"drag_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Badge colors
	Success   string `yaml:"success"`
	Warning   string `yaml:"warning"`
	Danger    string `yaml:"danger"`
	Secondary string `yaml:"secondary"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.Preset = preset.Preset

	base := preset.fieldsByName()
	for name, field := range c.fieldsByName() {
		if *field == "" {
			*field = *base[name]
		}
	}
}

// MergeFrom overrides colors with the non-empty values of other. A preset in
// other replaces the base preset and clears colors it does not override.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = ColorScheme{Preset: other.Preset}
	}
	theirs := other.fieldsByName()
	for name, field := range c.fieldsByName() {
		if v := *theirs[name]; v != "" {
			*field = v
		}
	}
}

// fieldsByName maps yaml names to color fields
func (c *ColorScheme) fieldsByName() map[string]*string {
	return map[string]*string{
		"accent":          &c.Accent,
		"create":          &c.Create,
		"edit":            &c.Edit,
		"delete":          &c.Delete,
		"column_border":   &c.ColumnBorder,
		"card_border":     &c.CardBorder,
		"card_background": &c.CardBackground,
		"selected_border": &c.SelectedBorder,
		"selected_bg":     &c.SelectedBg,
		"drag_border":     &c.DragBorder,
		"title":           &c.Title,
		"subtle":          &c.Subtle,
		"normal":          &c.Normal,
		"success":         &c.Success,
		"warning":         &c.Warning,
		"danger":          &c.Danger,
		"secondary":       &c.Secondary,
		"info_fg":         &c.InfoFg,
		"info_bg":         &c.InfoBg,
		"warning_fg":      &c.WarningFg,
		"warning_bg":      &c.WarningBg,
		"error_fg":        &c.ErrorFg,
		"error_bg":        &c.ErrorBg,
	}
}
