package middleware

import (
	"time"

	"portfolio/internal/i18n"

	"github.com/gofiber/fiber/v3"
)

const (
	CtxPreferencesKey = "preferences"

	LanguageCookie = "lang"
	ThemeCookie    = "theme"

	preferenceCookieMaxAge = int(365 * 24 * time.Hour / time.Second)
)

// PreferencesMiddleware resolves the visitor's language and theme once per
// request. Language precedence: ?lang, lang cookie, Accept-Language, default.
// An explicit ?lang or ?theme is persisted as a cookie.
type PreferencesMiddleware struct {
	secureCookies bool
}

func NewPreferencesMiddleware(secureCookies bool) *PreferencesMiddleware {
	return &PreferencesMiddleware{secureCookies: secureCookies}
}

func (m *PreferencesMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		lang := m.resolveLanguage(c)
		theme := m.resolveTheme(c)
		c.Locals(CtxPreferencesKey, i18n.NewPreferences(lang, theme))
		return c.Next()
	}
}

func (m *PreferencesMiddleware) resolveLanguage(c fiber.Ctx) i18n.Language {
	if q := c.Query("lang"); q != "" {
		if lang, ok := i18n.ParseLanguage(q); ok {
			m.SetLanguageCookie(c, lang)
			return lang
		}
	}
	if v := c.Cookies(LanguageCookie); v != "" {
		if lang, ok := i18n.ParseLanguage(v); ok {
			return lang
		}
	}
	if lang, ok := i18n.MatchAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage)); ok {
		return lang
	}
	return i18n.DefaultLanguage
}

func (m *PreferencesMiddleware) resolveTheme(c fiber.Ctx) i18n.Theme {
	if q := c.Query("theme"); q != "" {
		if theme, ok := i18n.ParseTheme(q); ok {
			m.SetThemeCookie(c, theme)
			return theme
		}
	}
	if theme, ok := i18n.ParseTheme(c.Cookies(ThemeCookie)); ok {
		return theme
	}
	return i18n.DefaultTheme
}

func (m *PreferencesMiddleware) SetLanguageCookie(c fiber.Ctx, lang i18n.Language) {
	m.setCookie(c, LanguageCookie, string(lang))
}

func (m *PreferencesMiddleware) SetThemeCookie(c fiber.Ctx, theme i18n.Theme) {
	m.setCookie(c, ThemeCookie, string(theme))
}

func (m *PreferencesMiddleware) setCookie(c fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   preferenceCookieMaxAge,
		Secure:   m.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// PreferencesFrom returns the request's preferences, or defaults when the
// middleware did not run.
func PreferencesFrom(c fiber.Ctx) *i18n.Preferences {
	if p, ok := c.Locals(CtxPreferencesKey).(*i18n.Preferences); ok && p != nil {
		return p
	}
	return i18n.NewPreferences(i18n.DefaultLanguage, i18n.DefaultTheme)
}

func LanguageFrom(c fiber.Ctx) i18n.Language {
	return PreferencesFrom(c).Language()
}
