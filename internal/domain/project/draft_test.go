package project

import (
	"errors"
	"reflect"
	"testing"
)

func TestDraft_RemoveImageKeepsOrder(t *testing.T) {
	d := NewDraft()
	d.AppendImages("a.png", "b.png", "c.png")
	d.RemoveImage(1)

	if !reflect.DeepEqual(d.Images, []string{"a.png", "c.png"}) {
		t.Fatalf("unexpected images %v", d.Images)
	}

	d.RemoveImage(5)
	d.RemoveImage(-1)
	if len(d.Images) != 2 {
		t.Fatalf("out-of-range remove changed images: %v", d.Images)
	}
}

func TestDraft_Validate(t *testing.T) {
	d := NewDraft()
	d.Title = "   "
	d.Description = "desc"
	if !errors.Is(d.Validate(), ErrTitleAndDescriptionRequired) {
		t.Fatal("expected blank title to fail validation")
	}

	d.Title = "Portfolio"
	if err := d.Validate(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDraft_Payload(t *testing.T) {
	d := Draft{
		Title:        "  Site  ",
		Description:  " desc ",
		LiveDemoLink: "   ",
		GithubLink:   " https://github.com/me/site ",
		Technologies: []string{"Go", " ", "Go", "PostgreSQL"},
		KeyFeatures:  []string{" i18n "},
		Images:       []string{"cover.png"},
	}

	p := d.Payload()
	if p.Title != "Site" || p.Description != "desc" {
		t.Fatalf("expected trimmed strings, got %q %q", p.Title, p.Description)
	}
	if p.LiveDemoLink != nil {
		t.Fatalf("expected nil live demo link, got %q", *p.LiveDemoLink)
	}
	if p.GithubLink == nil || *p.GithubLink != "https://github.com/me/site" {
		t.Fatalf("unexpected github link %v", p.GithubLink)
	}
	if !reflect.DeepEqual(p.Technologies, []string{"Go", "Go", "PostgreSQL"}) {
		t.Fatalf("unexpected technologies %v", p.Technologies)
	}
	if !reflect.DeepEqual(p.KeyFeatures, []string{"i18n"}) {
		t.Fatalf("unexpected features %v", p.KeyFeatures)
	}
}

func TestDraftFromProject_SeedsLanguageVariants(t *testing.T) {
	link := "https://demo.example"
	d := DraftFromProject(Project{
		Title:         "Site",
		Description:   "generic",
		DescriptionFR: "français",
		AboutProject:  "about",
		LiveDemoLink:  &link,
		Images:        []string{"a.png"},
	})

	if d.DescriptionEN != "generic" || d.DescriptionFR != "français" {
		t.Fatalf("unexpected descriptions %q %q", d.DescriptionEN, d.DescriptionFR)
	}
	if d.AboutProjectEN != "about" || d.AboutProjectFR != "about" {
		t.Fatalf("unexpected about %q %q", d.AboutProjectEN, d.AboutProjectFR)
	}
	if d.LiveDemoLink != link || d.GithubLink != "" {
		t.Fatalf("unexpected links %q %q", d.LiveDemoLink, d.GithubLink)
	}
}
