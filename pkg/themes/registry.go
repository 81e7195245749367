// Package themes maps template slugs to renderable views. The registry is
// populated at startup and read-only afterwards; it is consulted on every
// public invitation render.
package themes

import (
	"fmt"
	"sort"
	"sync"
)

// Theme binds a template slug to the view that renders it.
type Theme struct {
	Slug string
	Name string
	// View is the template path handed to the HTML engine.
	View string
}

// NotFoundTheme is returned for unregistered slugs. Rendering it produces a
// neutral placeholder page instead of an error.
var NotFoundTheme = Theme{
	Slug: "not-found",
	Name: "Tema Tidak Ditemukan",
	View: "public/themes/not_found",
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

// Register adds a theme. Duplicate slugs are rejected rather than silently
// overwritten, so a misconfigured deploy fails at startup instead of serving
// the wrong presentation.
func Register(t Theme) error {
	if t.Slug == "" || t.View == "" {
		return fmt.Errorf("theme %q: slug and view are required", t.Slug)
	}
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[t.Slug]; exists {
		return fmt.Errorf("theme %q is already registered", t.Slug)
	}
	registry[t.Slug] = t
	return nil
}

// MustRegister is Register for the built-in catalog loaded at init.
func MustRegister(t Theme) {
	if err := Register(t); err != nil {
		panic(err)
	}
}

// Resolve returns the theme for a slug, or NotFoundTheme. Never errors.
func Resolve(slug string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[slug]; ok {
		return t
	}
	return NotFoundTheme
}

// Exists reports whether a slug is registered.
func Exists(slug string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[slug]
	return ok
}

// All returns the registered themes sorted by slug.
func All() []Theme {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Theme, 0, len(registry))
	for _, t := range registry {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
