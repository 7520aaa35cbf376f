// Package render turns a stored record into a ready-to-post article for one
// of the supported platforms.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienpequegnot/curator/internal/record"
)

type Style string

const (
	Xiaohongshu Style = "xiaohongshu"
	Zhihu       Style = "zhihu"
	GZH         Style = "gzh"
)

const (
	DefaultStyle     = Xiaohongshu
	DefaultBodyLimit = 500
	ellipsis         = "..."
)

// Styles returns the known styles in display order.
func Styles() []Style {
	return []Style{Xiaohongshu, Zhihu, GZH}
}

func ParseStyle(name string) (Style, bool) {
	s := Style(name)
	_, ok := templates[s]
	return s, ok
}

type Renderer struct {
	bodyLimit int
}

// New returns a renderer that cuts bodies longer than bodyLimit characters.
// A non-positive limit selects DefaultBodyLimit.
func New(bodyLimit int) *Renderer {
	if bodyLimit <= 0 {
		bodyLimit = DefaultBodyLimit
	}
	return &Renderer{bodyLimit: bodyLimit}
}

// Render fills the template for style with the record's title and body.
// Unknown styles render as xiaohongshu.
func (r *Renderer) Render(rec record.Record, style string) string {
	tpl, ok := templates[Style(style)]
	if !ok {
		tpl = templates[DefaultStyle]
	}
	return strings.NewReplacer(
		"{title}", rec.Title,
		"{content}", r.Truncate(rec.Content),
	).Replace(tpl)
}

// Truncate keeps the first bodyLimit characters and marks the cut.
func (r *Renderer) Truncate(content string) string {
	runes := []rune(content)
	if len(runes) <= r.bodyLimit {
		return content
	}
	return string(runes[:r.bodyLimit]) + ellipsis
}

// Write renders rec and saves the article next to the store. It returns the
// file path and the rendered text.
func (r *Renderer) Write(dir string, rec record.Record, style string) (string, string, error) {
	article := r.Render(rec, style)

	path := ArticlePath(dir, rec.ID, style)
	if err := os.WriteFile(path, []byte(article), 0644); err != nil {
		return "", "", fmt.Errorf("failed to write article: %w", err)
	}
	return path, article, nil
}

// ArticlePath names the file for a rendered record. The style keeps the name
// the caller asked for, even when it fell back to the default template. An
// empty style names the default one.
func ArticlePath(dir string, id int, style string) string {
	if style == "" {
		style = string(DefaultStyle)
	}
	name := strings.NewReplacer("/", "_", `\`, "_").Replace(style)
	return filepath.Join(dir, fmt.Sprintf("article_%d_%s.md", id, name))
}

// Render uses the default body limit.
func Render(rec record.Record, style string) string {
	return New(DefaultBodyLimit).Render(rec, style)
}
