package model

// Settings holds user preferences. The persisted document may carry a
// partial settings object; Normalize back-fills every missing field so
// callers always see a complete value.
type Settings struct {
	Theme            string            `json:"theme"`
	DefaultFont      string            `json:"defaultFont"`
	AutoSaveInterval int               `json:"autoSaveInterval"` // seconds
	Shortcuts        map[string]string `json:"shortcuts"`
	AvailableThemes  []string          `json:"availableThemes"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Theme:            "light",
		DefaultFont:      "default",
		AutoSaveInterval: 30,
		Shortcuts:        DefaultShortcuts(),
		AvailableThemes:  DefaultThemes(),
	}
}

// DefaultShortcuts returns the built-in keyboard shortcut map.
func DefaultShortcuts() map[string]string {
	return map[string]string{
		"newNote": "Ctrl+Alt+N",
		"newTask": "Ctrl+Alt+T",
	}
}

// DefaultThemes returns the built-in theme names.
func DefaultThemes() []string {
	return []string{"light", "dark", "blue", "sepia", "high-contrast"}
}

// Normalize back-fills missing fields with defaults. Zero AutoSaveInterval
// counts as missing.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if s.Theme == "" {
		s.Theme = def.Theme
	}
	if s.DefaultFont == "" {
		s.DefaultFont = def.DefaultFont
	}
	if s.AutoSaveInterval <= 0 {
		s.AutoSaveInterval = def.AutoSaveInterval
	}
	if s.Shortcuts == nil {
		s.Shortcuts = DefaultShortcuts()
	}
	if len(s.AvailableThemes) == 0 {
		s.AvailableThemes = DefaultThemes()
	}
}

// HasTheme returns true if the named theme is available.
func (s *Settings) HasTheme(name string) bool {
	for _, t := range s.AvailableThemes {
		if t == name {
			return true
		}
	}
	return false
}

// Merge shallow-merges non-zero fields of other into s.
func (s *Settings) Merge(other Settings) {
	if other.Theme != "" {
		s.Theme = other.Theme
	}
	if other.DefaultFont != "" {
		s.DefaultFont = other.DefaultFont
	}
	if other.AutoSaveInterval > 0 {
		s.AutoSaveInterval = other.AutoSaveInterval
	}
	for name, combo := range other.Shortcuts {
		if s.Shortcuts == nil {
			s.Shortcuts = make(map[string]string)
		}
		s.Shortcuts[name] = combo
	}
	if len(other.AvailableThemes) > 0 {
		s.AvailableThemes = other.AvailableThemes
	}
}
