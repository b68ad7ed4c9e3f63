// Package views provides a default set of templ components for an s11a
// site. Sites that want custom templates can supply their own ViewFuncs;
// Funcs returns this package's set.
package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"

	s11a "github.com/funsaized/s11a"
	"github.com/funsaized/s11a/content"
)

// Funcs returns the default view set for the given site configuration.
func Funcs(cfg s11a.SiteConfig) s11a.ViewFuncs {
	return s11a.ViewFuncs{
		Home: func(posts []s11a.Post, activeTag, activeCategory string, tags, categories []string, siteURL string) templ.Component {
			return homePage(cfg, posts, activeTag, activeCategory, tags, categories)
		},
		Post: func(page s11a.PostPage, siteURL string) templ.Component {
			return postPage(cfg, page)
		},
		AdminLogin:       adminLogin,
		AdminDashboard:   adminDashboard,
		AdminFormPartial: adminForm,
		AdminImages:      adminImages,
		NotFound: func() templ.Component {
			return messagePage(cfg, "404", "Page not found.")
		},
		ServerError: func() templ.Component {
			return messagePage(cfg, "500", "Something went wrong.")
		},
	}
}

func component(build func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		build(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func layout(buf *bytes.Buffer, cfg s11a.SiteConfig, meta s11a.PageMeta, jsonLD string, body func(*bytes.Buffer)) {
	buf.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	buf.WriteString("<meta charset=\"utf-8\"/>")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	buf.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>")
	if meta.Description != "" {
		buf.WriteString("<meta name=\"description\" content=\"" + html.EscapeString(meta.Description) + "\"/>")
	}
	if meta.URL != "" {
		buf.WriteString("<link rel=\"canonical\" href=\"" + html.EscapeString(meta.URL) + "\"/>")
		buf.WriteString("<meta property=\"og:url\" content=\"" + html.EscapeString(meta.URL) + "\"/>")
	}
	buf.WriteString("<meta property=\"og:title\" content=\"" + html.EscapeString(meta.Title) + "\"/>")
	if meta.OGType != "" {
		buf.WriteString("<meta property=\"og:type\" content=\"" + meta.OGType + "\"/>")
	}
	buf.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\"/>")
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
	if jsonLD != "" {
		buf.WriteString("<script type=\"application/ld+json\">" + jsonLD + "</script>")
	}
	buf.WriteString("</head><body>")
	buf.WriteString("<header class=\"site-header\"><a href=\"/\" class=\"site-name\">" + html.EscapeString(cfg.Name) + "</a></header>")
	buf.WriteString("<main>")
	body(buf)
	buf.WriteString("</main>")
	buf.WriteString("<footer class=\"site-footer\"><a href=\"/feed.xml\">RSS</a></footer>")
	buf.WriteString("</body></html>")
}

func homePage(cfg s11a.SiteConfig, posts []s11a.Post, activeTag, activeCategory string, tags, categories []string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := s11a.PageMeta{
			Title:       cfg.Name,
			Description: cfg.Description,
			URL:         s11a.BuildURL(cfg.URL),
			OGType:      "website",
		}
		layout(buf, cfg, meta, s11a.WebsiteJsonLD(cfg), func(buf *bytes.Buffer) {
			buf.WriteString("<nav class=\"filters\">")
			writeFilterLinks(buf, "category", categories, activeCategory)
			writeFilterLinks(buf, "tag", tags, activeTag)
			buf.WriteString("</nav>")
			buf.WriteString("<section class=\"post-list\">")
			for _, p := range posts {
				writePostCard(buf, p)
			}
			if len(posts) == 0 {
				buf.WriteString("<p>No posts yet.</p>")
			}
			buf.WriteString("</section>")
		})
	})
}

func writeFilterLinks(buf *bytes.Buffer, param string, values []string, active string) {
	if len(values) == 0 {
		return
	}
	buf.WriteString("<ul class=\"filter-" + param + "\">")
	for _, v := range values {
		class := "filter"
		if v == active {
			class = "filter active"
		}
		buf.WriteString("<li><a class=\"" + class + "\" href=\"/?" + param + "=" + s11a.PathEscape(v) + "\">" + html.EscapeString(v) + "</a></li>")
	}
	buf.WriteString("</ul>")
}

func writePostCard(buf *bytes.Buffer, p s11a.Post) {
	buf.WriteString("<article class=\"post-card\">")
	if p.Thumbnail != "" {
		buf.WriteString("<img src=\"" + html.EscapeString(p.Thumbnail) + "\" alt=\"\" loading=\"lazy\"/>")
	}
	buf.WriteString("<h2><a href=\"" + html.EscapeString(p.Link) + "/\">" + html.EscapeString(p.Title) + "</a></h2>")
	buf.WriteString("<time datetime=\"" + html.EscapeString(p.Date) + "\">" + html.EscapeString(p.Date) + "</time>")
	if p.Category != "" {
		buf.WriteString("<span class=\"category\">" + html.EscapeString(p.Category) + "</span>")
	}
	if p.Excerpt != "" {
		buf.WriteString("<p>" + html.EscapeString(p.Excerpt) + "</p>")
	}
	buf.WriteString("</article>")
}

func postPage(cfg s11a.SiteConfig, page s11a.PostPage) templ.Component {
	return component(func(buf *bytes.Buffer) {
		post := page.Post
		meta := s11a.PageMeta{
			Title:       post.Title + " | " + cfg.Name,
			Description: post.Excerpt,
			URL:         s11a.BuildURL(cfg.URL, "blog", post.Slug),
			OGType:      "article",
		}
		layout(buf, cfg, meta, s11a.BlogPostingJsonLD(page, cfg), func(buf *bytes.Buffer) {
			buf.WriteString("<article class=\"post\">")
			buf.WriteString("<h1>" + html.EscapeString(post.Title) + "</h1>")
			buf.WriteString("<p class=\"post-meta\">")
			buf.WriteString("<time datetime=\"" + html.EscapeString(post.Date) + "\">" + html.EscapeString(page.DateLabel) + "</time>")
			buf.WriteString(" &middot; <span class=\"reading-time\">" + strconv.Itoa(page.ReadingTime) + " min read</span>")
			if post.Category != "" {
				buf.WriteString(" &middot; <span class=\"category\">" + html.EscapeString(post.Category) + "</span>")
			}
			buf.WriteString("</p>")
			if len(post.Tags) > 0 {
				buf.WriteString("<ul class=\"tags\">")
				for _, t := range post.Tags {
					buf.WriteString("<li><a href=\"/?tag=" + s11a.PathEscape(t) + "\">" + html.EscapeString(t) + "</a></li>")
				}
				buf.WriteString("</ul>")
			}
			if len(page.TOC) > 0 {
				buf.WriteString("<nav class=\"toc\"><h2>Contents</h2>")
				writeTOC(buf, page.TOC)
				buf.WriteString("</nav>")
			}
			// page.Body is trusted HTML rendered from the post's own Markdown.
			buf.WriteString("<div class=\"post-body\">" + page.Body + "</div>")
			buf.WriteString("</article>")
			writeRelated(buf, page.Related)
		})
	})
}

// writeTOC renders the heading tree as nested lists, linking each entry to
// its anchor in the body.
func writeTOC(buf *bytes.Buffer, nodes []*content.HeadingNode) {
	buf.WriteString("<ul>")
	for _, n := range nodes {
		buf.WriteString("<li><a href=\"#" + html.EscapeString(n.ID) + "\">" + html.EscapeString(n.Title) + "</a>")
		if len(n.Children) > 0 {
			writeTOC(buf, n.Children)
		}
		buf.WriteString("</li>")
	}
	buf.WriteString("</ul>")
}

func writeRelated(buf *bytes.Buffer, related []content.Related) {
	if len(related) == 0 {
		return
	}
	buf.WriteString("<aside class=\"related\"><h2>Related posts</h2><ul>")
	for _, r := range related {
		buf.WriteString("<li><a href=\"/blog/" + s11a.PathEscape(r.Slug) + "/\">" + html.EscapeString(r.Title) + "</a>")
		buf.WriteString(" <span class=\"reading-time\">" + strconv.Itoa(r.ReadingTime) + " min read</span>")
		if r.Excerpt != "" {
			buf.WriteString("<p>" + html.EscapeString(r.Excerpt) + "</p>")
		}
		buf.WriteString("</li>")
	}
	buf.WriteString("</ul></aside>")
}

func messagePage(cfg s11a.SiteConfig, title, message string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		meta := s11a.PageMeta{Title: title + " | " + cfg.Name}
		layout(buf, cfg, meta, "", func(buf *bytes.Buffer) {
			buf.WriteString("<h1>" + html.EscapeString(title) + "</h1>")
			buf.WriteString("<p>" + html.EscapeString(message) + "</p>")
			buf.WriteString("<p><a href=\"/\">Back home</a></p>")
		})
	})
}
