// Package markdown renders Markdown to HTML as a templ component.
// Rendering is GitHub-flavored (tables, strikethrough, task lists) and
// passes raw HTML through, since imported notes may embed their own markup.
package markdown

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// Markdown returns a templ.Component that renders source as HTML.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := Render(&buf, source); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Render writes the HTML representation of source to buf.
func Render(buf *bytes.Buffer, source string) error {
	return md.Convert([]byte(source), buf)
}

// RenderString returns the HTML representation of source, or "" if the
// source cannot be rendered.
func RenderString(source string) string {
	var buf bytes.Buffer
	if err := Render(&buf, source); err != nil {
		return ""
	}
	return buf.String()
}
