package config

// Theme holds the hex colors used by the CLI's human-readable output.
type Theme struct {
	Accent  string `yaml:"accent"`
	Title   string `yaml:"title"`
	Subtle  string `yaml:"subtle"`
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Accent:  "#7E9CD8",
		Title:   "#DCD7BA",
		Subtle:  "#727169",
		Success: "#98BB6C",
		Warning: "#E6C384",
		Error:   "#E82424",
	}
}

// mergeDefaults fills any color left empty by the user's config file.
func (t *Theme) mergeDefaults() {
	def := DefaultTheme()
	if t.Accent == "" {
		t.Accent = def.Accent
	}
	if t.Title == "" {
		t.Title = def.Title
	}
	if t.Subtle == "" {
		t.Subtle = def.Subtle
	}
	if t.Success == "" {
		t.Success = def.Success
	}
	if t.Warning == "" {
		t.Warning = def.Warning
	}
	if t.Error == "" {
		t.Error = def.Error
	}
}
