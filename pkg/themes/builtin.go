package themes

// Built-in themes shipped with the platform. The database template catalog
// (models.Template) references these by slug; seeding keeps both in step.
func init() {
	MustRegister(Theme{Slug: "classic-rose", Name: "Classic Rose", View: "public/themes/classic_rose"})
	MustRegister(Theme{Slug: "rustic-wood", Name: "Rustic Wood", View: "public/themes/rustic_wood"})
	MustRegister(Theme{Slug: "minimal-ivory", Name: "Minimal Ivory", View: "public/themes/minimal_ivory"})
	MustRegister(Theme{Slug: "golden-ornament", Name: "Golden Ornament", View: "public/themes/golden_ornament"})
	MustRegister(Theme{Slug: "royal-batik", Name: "Royal Batik", View: "public/themes/royal_batik"})
}
