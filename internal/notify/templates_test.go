package notify

import (
	"strings"
	"testing"

	"cargo-tracking-service/internal/model"
)

func TestCatalog_RenderSupportedLanguages(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	for _, lang := range []string{"en", "si", "ta"} {
		msg := c.Render(lang, model.InTransit, "PKG12AB34CD")
		if msg == "" {
			t.Fatalf("expected non-empty message for lang=%s", lang)
		}
		if !strings.Contains(msg, "PKG12AB34CD") {
			t.Fatalf("expected tracking id in message for lang=%s, got %q", lang, msg)
		}
	}
}

func TestCatalog_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	got := c.Render("fr", model.Delivered, "PKGAAAA1111")
	want := c.Render("en", model.Delivered, "PKGAAAA1111")
	if got != want {
		t.Fatalf("expected unsupported language to fall back to en, got %q want %q", got, want)
	}
}

func TestCatalog_FallsBackToGenericTemplate(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	// si has no cancelled template.
	got := c.Render("si", model.Cancelled, "PKGBBBB2222")
	if got != "Package PKGBBBB2222 status update: cancelled" {
		t.Fatalf("unexpected generic fallback: %q", got)
	}
}

func TestCatalog_NeverEmpty(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	statuses := []model.Status{
		model.Registered, model.InTransit, model.Delivered,
		model.Delayed, model.Cancelled, model.Status("bogus"),
	}
	langs := []string{"en", "si", "ta", "de", "", "zz"}

	for _, lang := range langs {
		for _, status := range statuses {
			if msg := c.Render(lang, status, "PKG00000000"); msg == "" {
				t.Fatalf("empty message for lang=%q status=%q", lang, status)
			}
		}
	}
}
