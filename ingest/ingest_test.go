package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseFullFrontmatter(t *testing.T) {
	raw := []byte(`---
title: "Coffee Reviews"
slug: coffee-reviews
date: 2024-03-10
category: Food
tags: ["coffee", "reviews"]
excerpt: "Tasting notes from various roasters."
---

# Coffee

Some tasting notes.
`)
	entry, err := Parse(raw, "coffee.md")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	item := entry.Item
	if item.Slug != "coffee-reviews" {
		t.Errorf("Slug = %q, want coffee-reviews", item.Slug)
	}
	if item.Title != "Coffee Reviews" {
		t.Errorf("Title = %q, want Coffee Reviews", item.Title)
	}
	if item.Category != "Food" {
		t.Errorf("Category = %q, want Food", item.Category)
	}
	if len(item.Tags) != 2 || item.Tags[0] != "coffee" {
		t.Errorf("Tags = %v, want [coffee reviews]", item.Tags)
	}
	if item.Date.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("Date = %v, want 2024-03-10", item.Date)
	}
	if !strings.Contains(item.Body, "<h1>Coffee</h1>") {
		t.Errorf("Body should contain rendered heading: %q", item.Body)
	}
	if !entry.Published {
		t.Errorf("Published should default to true")
	}
}

func TestParseFallbacks(t *testing.T) {
	raw := []byte(`---
folder: Tech Notes
---

This note describes a small experiment with embedded databases and how they behave under load.
`)
	entry, err := Parse(raw, "embedded-db-notes.md")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	item := entry.Item
	if item.Title != "Embedded Db Notes" {
		t.Errorf("Title fallback = %q, want Embedded Db Notes", item.Title)
	}
	if item.Slug != "embedded-db-notes" {
		t.Errorf("Slug fallback = %q, want embedded-db-notes", item.Slug)
	}
	if item.Category != "Technology" {
		t.Errorf("Category from folder = %q, want Technology", item.Category)
	}
	if item.Excerpt == "" || len(item.Excerpt) > 160 {
		t.Errorf("Excerpt fallback = %q", item.Excerpt)
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	raw := []byte("Just a plain note with #golang and #testing hashtags inside the body text.\n")
	entry, err := Parse(raw, "plain-note.md")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entry.Item.Slug != "plain-note" {
		t.Errorf("Slug = %q, want plain-note", entry.Item.Slug)
	}
	want := []string{"golang", "testing"}
	if len(entry.Item.Tags) != 2 || entry.Item.Tags[0] != want[0] || entry.Item.Tags[1] != want[1] {
		t.Errorf("Tags = %v, want %v", entry.Item.Tags, want)
	}
}

func TestParseUnpublished(t *testing.T) {
	raw := []byte(`---
title: Draft
published: false
---

Work in progress.
`)
	entry, err := Parse(raw, "draft.md")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if entry.Published {
		t.Errorf("Published = true, want false")
	}
}

func TestLoadDirSortsByDateDescending(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"older.md": "---\ntitle: Older\ndate: 2024-01-01\n---\n\nOlder body text that is long enough.\n",
		"newer.md": "---\ntitle: Newer\ndate: 2024-06-01\n---\n\nNewer body text that is long enough.\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	entries, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("LoadDir returned %d entries, want 2", len(entries))
	}
	if entries[0].Item.Slug != "newer" || entries[1].Item.Slug != "older" {
		t.Errorf("entries not sorted by date descending: %q, %q", entries[0].Item.Slug, entries[1].Item.Slug)
	}
}

func TestLoadDirIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "keep.mdx"), []byte("---\ntitle: Keep\n---\n\nSome body text that survives ingestion.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Item.Slug != "keep" {
		t.Errorf("LoadDir = %d entries, want only keep.mdx", len(entries))
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Amazing Note!", "my-amazing-note"},
		{"Coffee & Tea Reviews", "coffee-tea-reviews"},
		{"React.js Tips 2024", "react-js-tips-2024"},
		{"  spaced  out  ", "spaced-out"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugifyTruncatesAtWordBoundary(t *testing.T) {
	long := strings.Repeat("word ", 20)
	got := Slugify(long)
	if len(got) > 50 {
		t.Errorf("Slugify result too long: %d chars", len(got))
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("Slugify result ends with hyphen: %q", got)
	}
}

func TestGenerateExcerptCapsLength(t *testing.T) {
	long := "This opening sentence keeps going and going with plenty of words " + strings.Repeat("more words ", 30) + "."
	got := GenerateExcerpt(long, "Long Note")
	if len(got) > 160 {
		t.Errorf("excerpt too long: %d chars", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long excerpt should be elided: %q", got)
	}
}

func TestGenerateExcerptStripsFormatting(t *testing.T) {
	src := "# Heading\n\nThis **bold** sentence with a [link](https://example.com) is the summary candidate."
	got := GenerateExcerpt(src, "Note")
	if strings.ContainsAny(got, "*#[") {
		t.Errorf("excerpt still contains markdown syntax: %q", got)
	}
	if !strings.Contains(got, "bold sentence with a link") {
		t.Errorf("excerpt lost its text: %q", got)
	}
}

func TestCategoryForFolder(t *testing.T) {
	tests := []struct {
		folder string
		want   string
	}{
		{"Work", "Business"},
		{"Tech Notes", "Technology"},
		{"Recipes to try", "Food"},
		{"Random", "Personal"},
	}
	for _, tt := range tests {
		if got := CategoryForFolder(tt.folder); got != tt.want {
			t.Errorf("CategoryForFolder(%q) = %q, want %q", tt.folder, got, tt.want)
		}
	}
}
