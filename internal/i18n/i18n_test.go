package i18n

import "testing"

func TestResolveLocalizedField_FrenchFallsBackToEnglishBeforeGeneric(t *testing.T) {
	got := ResolveLocalizedField("Y", "X", "", French, "D")
	if got != "X" {
		t.Fatalf("expected X, got %q", got)
	}
}

func TestResolveLocalizedField_Chains(t *testing.T) {
	cases := []struct {
		name    string
		generic string
		en      string
		fr      string
		lang    Language
		want    string
	}{
		{name: "fr wins", generic: "g", en: "e", fr: "f", lang: French, want: "f"},
		{name: "fr whitespace skipped", generic: "g", en: "  ", fr: " \t", lang: French, want: "g"},
		{name: "en ignores fr", generic: "", en: "", fr: "f", lang: English, want: "D"},
		{name: "en uses generic", generic: "g", en: "", fr: "f", lang: English, want: "g"},
		{name: "en wins", generic: "g", en: "e", fr: "f", lang: English, want: "e"},
		{name: "all empty fr", lang: French, want: "D"},
		{name: "all empty en", lang: English, want: "D"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveLocalizedField(tc.generic, tc.en, tc.fr, tc.lang, "D")
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTranslator_MissReturnsKey(t *testing.T) {
	tr := Default()
	if got := tr.T(English, "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key back, got %q", got)
	}
	if got := tr.T(Language("de"), "nav.home"); got != "nav.home" {
		t.Fatalf("expected key back for unknown language, got %q", got)
	}
	var nilTr *Translator
	if got := nilTr.T(French, "nav.home"); got != "nav.home" {
		t.Fatalf("expected key back from nil translator, got %q", got)
	}
}

func TestTranslator_TablesHaveSameKeys(t *testing.T) {
	en := Default().Messages(English)
	fr := Default().Messages(French)
	for k := range en {
		if _, ok := fr[k]; !ok {
			t.Fatalf("key %q missing in fr", k)
		}
	}
	for k := range fr {
		if _, ok := en[k]; !ok {
			t.Fatalf("key %q missing in en", k)
		}
	}
	if fr["skills.category.data"] != "Base de Données & Cloud" {
		t.Fatalf("unexpected french category title %q", fr["skills.category.data"])
	}
}

func TestToggleIsInvolution(t *testing.T) {
	for _, l := range Supported() {
		if Toggle(Toggle(l)) != l {
			t.Fatalf("toggle twice changed %s", l)
		}
	}
	if Toggle(English) != French {
		t.Fatalf("expected fr after toggling en")
	}
}

func TestParseLanguage(t *testing.T) {
	cases := map[string]struct {
		want Language
		ok   bool
	}{
		"fr":     {French, true},
		"fr-CA":  {French, true},
		"fr_BE":  {French, true},
		"en-GB":  {English, true},
		"":       {English, false},
		"??":     {English, false},
	}
	for in, tc := range cases {
		got, ok := ParseLanguage(in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLanguage(%q) = %s,%v; expected %s,%v", in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	got, ok := MatchAcceptLanguage("fr-FR,fr;q=0.9,en;q=0.8")
	if !ok || got != French {
		t.Fatalf("expected fr, got %s ok=%v", got, ok)
	}
	if _, ok := MatchAcceptLanguage(""); ok {
		t.Fatalf("expected no match for empty header")
	}
}

func TestPreferencesToggle(t *testing.T) {
	p := NewPreferences(Language("xx"), Theme("blue"))
	if p.Language() != English || p.Theme() != ThemeLight {
		t.Fatalf("expected defaults, got %s/%s", p.Language(), p.Theme())
	}
	if p.ToggleLanguage() != French {
		t.Fatalf("expected fr")
	}
	if p.ToggleTheme() != ThemeDark {
		t.Fatalf("expected dark")
	}
	if p.ToggleTheme() != ThemeLight {
		t.Fatalf("expected light")
	}
}
