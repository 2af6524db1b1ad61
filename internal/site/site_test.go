package site

import "testing"

func TestLoad(t *testing.T) {
	meta, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if meta.Title == "" {
		t.Error("title is empty")
	}
	if meta.Author.Name == "" {
		t.Error("author name is empty")
	}
	for i, link := range meta.Links {
		if link.Label == "" || link.URL == "" {
			t.Errorf("links[%d] incomplete: %+v", i, link)
		}
	}
}
