package s11a

import (
	"time"

	"github.com/funsaized/s11a/content"
	"github.com/funsaized/s11a/markdown"
)

// Post is the core content type stored in SQLite. Content holds the raw
// Markdown source; rendering happens at request time.
type Post struct {
	Slug      string
	Title     string
	Date      string // YYYY-MM-DD
	Tags      []string
	Category  string
	Excerpt   string
	Thumbnail string
	Content   string
	Link      string
	Published bool
}

// Item converts a stored post into the derived-metadata form: the date is
// parsed and the Markdown body is rendered to HTML.
func (p Post) Item() content.Item {
	date, _ := time.Parse("2006-01-02", p.Date)
	return content.Item{
		Slug:      p.Slug,
		Title:     p.Title,
		Tags:      p.Tags,
		Category:  p.Category,
		Date:      date,
		Excerpt:   p.Excerpt,
		Thumbnail: p.Thumbnail,
		Body:      markdown.RenderString(p.Content),
	}
}

// PostPage is everything a post template needs: the rendered body with
// heading anchors injected, the table of contents, and the derived
// presentation metadata.
type PostPage struct {
	Post        Post
	Body        string
	TOC         []*content.HeadingNode
	ReadingTime int
	DateLabel   string
	Related     []content.Related
}

// Image is an uploaded image's metadata as stored in SQLite.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
