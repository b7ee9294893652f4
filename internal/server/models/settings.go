package models

import "fmt"

// Theme is the client app theme chosen by the user.
type Theme string

const (
	ThemeLight     Theme = "Light"
	ThemeDark      Theme = "Dark"
	ThemeFoxy      Theme = "Foxy"
	ThemeDarkOcean Theme = "DarkOcean"
)

// DefaultTheme is stored for every new user.
const DefaultTheme = ThemeLight

// ParseTheme accepts exactly one of the known theme names.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(s); t {
	case ThemeLight, ThemeDark, ThemeFoxy, ThemeDarkOcean:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Settings are per-user client preferences.
type Settings struct {
	UserID string
	Theme  Theme
}
