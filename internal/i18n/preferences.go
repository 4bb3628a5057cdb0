package i18n

import "sync"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), true
	default:
		return DefaultTheme, false
	}
}

// Preferences owns the current language and theme selection. It is created
// once per request scope and read by every view that renders text.
type Preferences struct {
	mu       sync.RWMutex
	language Language
	theme    Theme
}

func NewPreferences(lang Language, theme Theme) *Preferences {
	if !lang.Valid() {
		lang = DefaultLanguage
	}
	if _, ok := ParseTheme(string(theme)); !ok {
		theme = DefaultTheme
	}
	return &Preferences{language: lang, theme: theme}
}

func (p *Preferences) Language() Language {
	if p == nil {
		return DefaultLanguage
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.language
}

func (p *Preferences) Theme() Theme {
	if p == nil {
		return DefaultTheme
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

func (p *Preferences) ToggleLanguage() Language {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.language = Toggle(p.language)
	return p.language
}

func (p *Preferences) ToggleTheme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.theme == ThemeDark {
		p.theme = ThemeLight
	} else {
		p.theme = ThemeDark
	}
	return p.theme
}
