package i18n

import "strings"

// Translator maps a UI string key to display text per language.
type Translator struct {
	messages map[Language]map[string]string
}

func NewTranslator(messages map[Language]map[string]string) *Translator {
	return &Translator{messages: messages}
}

// Default returns the translator backed by the built-in message table.
func Default() *Translator {
	return defaultTranslator
}

var defaultTranslator = NewTranslator(messages)

// T returns the text for key in lang. A miss returns the key unchanged so
// the gap shows up on the page instead of failing the render.
func (t *Translator) T(lang Language, key string) string {
	if t == nil {
		return key
	}
	if v, ok := t.messages[lang][key]; ok {
		return v
	}
	return key
}

// Messages returns a copy of the table for one language.
func (t *Translator) Messages(lang Language) map[string]string {
	out := map[string]string{}
	if t == nil {
		return out
	}
	for k, v := range t.messages[lang] {
		out[k] = v
	}
	return out
}

// ResolveLocalizedField picks the text shown for one bilingual content field.
//
//	fr: fr, then en, then generic, then def
//	en: en, then generic, then def
//
// French deliberately falls back to English before the generic field.
func ResolveLocalizedField(generic, en, fr string, lang Language, def string) string {
	var chain []string
	if lang == French {
		chain = []string{fr, en, generic}
	} else {
		chain = []string{en, generic}
	}
	for _, v := range chain {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return def
}
