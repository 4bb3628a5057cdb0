package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	French  Language = "fr"

	DefaultLanguage = English
)

var supportedTags = []language.Tag{language.English, language.French}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the closed set of languages in display order.
func Supported() []Language {
	return []Language{English, French}
}

func (l Language) Valid() bool {
	return l == English || l == French
}

// Toggle flips between the two supported languages.
func Toggle(l Language) Language {
	if l == French {
		return English
	}
	return French
}

// ParseLanguage accepts a BCP 47 tag ("fr", "fr-CA", "en_GB") and maps it to
// a supported language. The bool is false when nothing matched.
func ParseLanguage(value string) (Language, bool) {
	value = strings.TrimSpace(strings.ReplaceAll(value, "_", "-"))
	if value == "" {
		return DefaultLanguage, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultLanguage, false
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage, false
	}
	return fromTag(supportedTags[idx]), true
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language header.
func MatchAcceptLanguage(header string) (Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage, false
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage, false
	}
	return fromTag(supportedTags[idx]), true
}

func fromTag(tag language.Tag) Language {
	base, _ := tag.Base()
	if base.String() == "fr" {
		return French
	}
	return English
}
