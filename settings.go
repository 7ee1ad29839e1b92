package workledger

import "fmt"

// Theme is the color scheme of the user interface.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme parses a string into a Theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("unknown theme %q, want light or dark", s)
}

// Settings are the company wide preferences.
type Settings struct {
	Theme            Theme  `json:"theme" validate:"oneof=light dark"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	Currency         string `json:"currency" validate:"required,currency"`
	CompanyName      string `json:"companyName" validate:"required"`
}

// DefaultSettings returns the settings of a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		Theme:            ThemeLight,
		SidebarCollapsed: false,
		Currency:         "USD",
		CompanyName:      "WorkLedger Inc.",
	}
}

// SettingsUpdate holds the settings to change. Nil fields are left unchanged.
type SettingsUpdate struct {
	Theme            *Theme
	SidebarCollapsed *bool
	Currency         *string
	CompanyName      *string
}

func (u SettingsUpdate) apply(s *Settings) {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.SidebarCollapsed != nil {
		s.SidebarCollapsed = *u.SidebarCollapsed
	}
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
	if u.CompanyName != nil {
		s.CompanyName = *u.CompanyName
	}
}
