package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// newConverter returns the goldmark instance used for HTML export.
// GFM is enabled so bare repository URLs in titles are linkified.
func newConverter() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
}

// ToHTML converts a rendered Markdown report to an HTML fragment.
// Raw HTML in PR titles is omitted, as in goldmark's default safe mode.
func ToHTML(document string) ([]byte, error) {
	var buf bytes.Buffer
	if err := newConverter().Convert([]byte(document), &buf); err != nil {
		return nil, fmt.Errorf("convert markdown to HTML: %w", err)
	}
	return buf.Bytes(), nil
}
