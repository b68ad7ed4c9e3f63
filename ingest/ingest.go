// Package ingest loads a directory of Markdown content files into the
// corpus. Each file carries YAML frontmatter written by the notes exporter;
// fields the exporter could not fill (slug, excerpt, category, tags) are
// derived here with the same fallbacks the exporter uses.
package ingest

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/funsaized/s11a/content"
	"github.com/funsaized/s11a/markdown"
)

// FrontMatter mirrors the fields the exporter writes into each note.
type FrontMatter struct {
	Title     string   `yaml:"title"`
	Slug      string   `yaml:"slug"`
	Date      string   `yaml:"date"`
	Category  string   `yaml:"category"`
	Tags      []string `yaml:"tags"`
	Excerpt   string   `yaml:"excerpt"`
	Thumbnail string   `yaml:"thumbnail"`
	Folder    string   `yaml:"folder"`
	Published *bool    `yaml:"published"`
}

// Entry is one loaded content file: the derived item, its raw Markdown
// source, and its publication flag.
type Entry struct {
	Item      content.Item
	Markdown  string
	Published bool
}

// dateFormats are tried in order when parsing frontmatter dates.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadDir walks dir for .md/.mdx files and returns one Entry per file,
// sorted by date descending. Files with unreadable frontmatter are treated
// as pure Markdown rather than skipped.
func LoadDir(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".md" && ext != ".mdx" {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		entry, err := Parse(raw, d.Name())
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Item.Date.After(entries[j].Item.Date)
	})
	return entries, nil
}

// Parse builds an Entry from one file's bytes. filename supplies the title
// fallback for notes without frontmatter.
func Parse(raw []byte, filename string) (Entry, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		// No frontmatter block; treat the whole file as Markdown.
		body = raw
		fm = FrontMatter{}
	}
	source := string(body)

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		title = titleFromFilename(filename)
	}
	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return Entry{}, fmt.Errorf("no usable slug for %s", filename)
	}

	var date time.Time
	if fm.Date != "" {
		for _, f := range dateFormats {
			if t, perr := time.Parse(f, fm.Date); perr == nil {
				date = t.UTC()
				break
			}
		}
	}

	tags := normalizeTags(fm.Tags)
	if len(tags) == 0 {
		tags = ExtractHashtags(source)
	}
	category := strings.TrimSpace(fm.Category)
	if category == "" && fm.Folder != "" {
		category = CategoryForFolder(fm.Folder)
	}
	excerpt := strings.TrimSpace(fm.Excerpt)
	if excerpt == "" {
		excerpt = GenerateExcerpt(source, title)
	}

	var buf bytes.Buffer
	if err := markdown.Render(&buf, source); err != nil {
		return Entry{}, fmt.Errorf("render %s: %w", filename, err)
	}

	published := true
	if fm.Published != nil {
		published = *fm.Published
	}

	return Entry{
		Item: content.Item{
			Slug:      slug,
			Title:     title,
			Tags:      tags,
			Category:  category,
			Date:      date,
			Excerpt:   excerpt,
			Thumbnail: strings.TrimSpace(fm.Thumbnail),
			Body:      buf.String(),
		},
		Markdown:  source,
		Published: published,
	}, nil
}

// Slugify converts a title to a URL-safe kebab-case slug, capped at 50
// characters with truncation at a word boundary where possible.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if len(slug) > 50 {
		cut := slug[:50]
		if i := strings.LastIndex(cut, "-"); i > 0 {
			cut = cut[:i]
		}
		slug = strings.TrimRight(cut, "-")
	}
	return slug
}

func titleFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return cases.Title(language.English).String(base)
}

func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

var hashtagRe = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags pulls up to five lowercased #hashtags out of a note body,
// for notes whose frontmatter carries no tags.
func ExtractHashtags(source string) []string {
	matches := hashtagRe.FindAllStringSubmatch(source, -1)
	var tags []string
	seen := make(map[string]struct{})
	for _, m := range matches {
		t := strings.ToLower(m[1])
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
		if len(tags) == 5 {
			break
		}
	}
	return tags
}

// folderCategories maps exporter folder names to site categories.
var folderCategories = map[string]string{
	"work":      "Business",
	"meetings":  "Business",
	"personal":  "Personal",
	"journal":   "Personal",
	"diary":     "Personal",
	"recipes":   "Food",
	"travel":    "Travel",
	"tech":      "Technology",
	"health":    "Health",
	"fitness":   "Health",
	"education": "Education",
	"learning":  "Education",
	"projects":  "Projects",
	"ideas":     "Ideas",
	"research":  "Research",
}

// CategoryForFolder maps a notes folder to a category, defaulting to
// "Personal" when the folder name matches nothing known.
func CategoryForFolder(folder string) string {
	lower := strings.ToLower(folder)
	for key, category := range folderCategories {
		if strings.Contains(lower, key) {
			return category
		}
	}
	return "Personal"
}

var (
	mdHeading    = regexp.MustCompile(`(?m)^#+\s*`)
	mdBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	mdImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	mdLink       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	mdCodeFence  = regexp.MustCompile("(?s)```.*?```")
	mdInlineCode = regexp.MustCompile("`[^`]+`")
	wsRuns       = regexp.MustCompile(`\s+`)
	sentenceEnd  = regexp.MustCompile(`[.!?]+`)
)

// GenerateExcerpt derives a short summary from a note body: the first
// sentence longer than 20 characters after Markdown formatting is stripped,
// capped at 160 characters.
func GenerateExcerpt(source, title string) string {
	clean := mdCodeFence.ReplaceAllString(source, "")
	clean = mdImage.ReplaceAllString(clean, "")
	clean = mdHeading.ReplaceAllString(clean, "")
	clean = mdBold.ReplaceAllString(clean, "$1")
	clean = mdItalic.ReplaceAllString(clean, "$1")
	clean = mdLink.ReplaceAllString(clean, "$1")
	clean = mdInlineCode.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(wsRuns.ReplaceAllString(clean, " "))

	excerpt := ""
	for _, s := range sentenceEnd.Split(clean, -1) {
		s = strings.TrimSpace(s)
		if len(s) > 20 {
			excerpt = s
			break
		}
	}
	if excerpt == "" {
		if len(clean) > 100 {
			clean = clean[:100]
		}
		excerpt = strings.TrimSpace(clean)
	}
	if len(excerpt) > 160 {
		excerpt = excerpt[:157] + "..."
	}
	if len(excerpt) < 20 {
		excerpt = "Notes about " + strings.ToLower(title)
	}
	return excerpt
}
