// Package site serves the blog's static metadata (title, tagline, author
// identity, social links) from an embedded YAML file, so the public
// header, footer, and about sections render without a database read.
package site

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed config/site.yaml
var configFiles embed.FS

// Metadata is the site-wide presentation config
type Metadata struct {
	Title       string       `yaml:"title" json:"title"`
	Tagline     string       `yaml:"tagline" json:"tagline"`
	Description string       `yaml:"description" json:"description"`
	Author      Author       `yaml:"author" json:"author"`
	Links       []SocialLink `yaml:"links" json:"links"`
}

// Author is the site owner's display identity
type Author struct {
	Name  string `yaml:"name" json:"name"`
	Email string `yaml:"email" json:"email,omitempty"`
}

// SocialLink is one entry in the site footer
type SocialLink struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Load parses the embedded site configuration
func Load() (*Metadata, error) {
	data, err := configFiles.ReadFile("config/site.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}

	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site config: %w", err)
	}

	if meta.Title == "" {
		return nil, fmt.Errorf("site config missing title")
	}

	return &meta, nil
}
