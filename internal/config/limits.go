package config

const (
	// MaxTitleLength is the maximum length for post titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxTitleLength = 255

	// MaxSlugLength is the maximum length for post slugs.
	// Same bound as titles; slugs derive from them.
	MaxSlugLength = 255

	// MaxExcerptLength is the maximum length for post excerpts.
	// Excerpts are card-sized summaries, not body text.
	MaxExcerptLength = 500

	// MaxFullNameLength is the maximum length for profile display names.
	MaxFullNameLength = 255

	// MaxBioLength is the maximum length for profile bios.
	MaxBioLength = 1000
)
