package themes

import "testing"

func TestRegisterRejectsDuplicateSlug(t *testing.T) {
	theme := Theme{Slug: "test-dup", Name: "Dup", View: "public/themes/test_dup"}
	if err := Register(theme); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := Register(theme); err == nil {
		t.Fatal("duplicate slug must be rejected")
	}
}

func TestRegisterRequiresSlugAndView(t *testing.T) {
	if err := Register(Theme{Name: "No Slug", View: "v"}); err == nil {
		t.Error("theme without a slug must be rejected")
	}
	if err := Register(Theme{Slug: "test-no-view", Name: "No View"}); err == nil {
		t.Error("theme without a view must be rejected")
	}
}

func TestResolveKnownSlug(t *testing.T) {
	theme := Theme{Slug: "test-resolve", Name: "Resolve", View: "public/themes/test_resolve"}
	if err := Register(theme); err != nil {
		t.Fatal(err)
	}
	if got := Resolve("test-resolve"); got != theme {
		t.Errorf("Resolve = %+v, want %+v", got, theme)
	}
	if !Exists("test-resolve") {
		t.Error("Exists must report a registered slug")
	}
}

func TestResolveUnknownSlugReturnsPlaceholder(t *testing.T) {
	got := Resolve("no-such-theme")
	if got != NotFoundTheme {
		t.Errorf("Resolve of unknown slug = %+v, want the placeholder", got)
	}
	if Exists("no-such-theme") {
		t.Error("Exists must not report an unknown slug")
	}
}

func TestBuiltinsAreRegistered(t *testing.T) {
	for _, slug := range []string{"classic-rose", "rustic-wood", "minimal-ivory", "golden-ornament", "royal-batik"} {
		if !Exists(slug) {
			t.Errorf("built-in theme %q is not registered", slug)
		}
	}
}

func TestAllIsSortedBySlug(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("registry must not be empty")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Slug >= all[i].Slug {
			t.Errorf("All() not sorted at %d: %q >= %q", i, all[i-1].Slug, all[i].Slug)
		}
	}
}
