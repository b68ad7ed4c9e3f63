package s11a

import (
	"strings"
	"testing"
	"time"
)

func TestBuildPostPage(t *testing.T) {
	app := New(SiteConfig{}, ViewFuncs{})

	post := Post{
		Slug:     "go-routines",
		Title:    "Go Routines",
		Date:     time.Now().Format("2006-01-02"),
		Tags:     []string{"go", "concurrency"},
		Category: "Technology",
		Content:  "# Intro\n\nGoroutines are lightweight threads managed by the runtime.\n\n## Scheduling\n\nThe scheduler multiplexes goroutines onto OS threads.\n",
	}
	pool := []Post{
		post,
		{
			Slug:     "go-channels",
			Title:    "Go Channels",
			Date:     "2024-02-01",
			Tags:     []string{"go", "channels"},
			Category: "Technology",
			Content:  "Channels connect goroutines.",
		},
		{
			Slug:     "sourdough",
			Title:    "Sourdough Starter",
			Date:     "2024-03-01",
			Tags:     []string{"baking"},
			Category: "Food",
			Content:  "Feed it daily.",
		},
	}

	page := app.buildPostPage(post, pool)

	if page.ReadingTime < 1 {
		t.Errorf("ReadingTime = %d, want at least 1", page.ReadingTime)
	}
	if page.DateLabel != "Today" {
		t.Errorf("DateLabel = %q, want Today", page.DateLabel)
	}
	if len(page.TOC) != 1 || page.TOC[0].Title != "Intro" {
		t.Fatalf("TOC = %v, want single root Intro", page.TOC)
	}
	if len(page.TOC[0].Children) != 1 || page.TOC[0].Children[0].Title != "Scheduling" {
		t.Errorf("TOC children = %v, want Scheduling nested under Intro", page.TOC[0].Children)
	}
	// Every TOC anchor must appear as an id in the rendered body.
	if !strings.Contains(page.Body, `id="`+page.TOC[0].ID+`"`) {
		t.Errorf("body missing anchor for %q:\n%s", page.TOC[0].ID, page.Body)
	}
	if len(page.Related) != 2 {
		t.Fatalf("Related = %v, want 2 entries", page.Related)
	}
	if page.Related[0].Slug != "go-channels" {
		t.Errorf("Related[0] = %q, want go-channels (shares a tag and category)", page.Related[0].Slug)
	}
	for _, r := range page.Related {
		if r.Slug == post.Slug {
			t.Error("related posts must not include the post itself")
		}
	}
}

func TestPostItemParsesDateAndRendersBody(t *testing.T) {
	p := Post{
		Slug:    "hello",
		Date:    "2024-01-15",
		Content: "# Hello\n\nSome **bold** text.",
	}
	item := p.Item()
	if item.Date.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("Date = %v, want 2024-01-15", item.Date)
	}
	if !strings.Contains(item.Body, "<h1>Hello</h1>") || !strings.Contains(item.Body, "<strong>bold</strong>") {
		t.Errorf("Body not rendered: %q", item.Body)
	}
}
