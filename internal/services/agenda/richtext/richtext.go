// Package richtext renders publisher-authored free text (Markdown) into
// safe HTML for embedding in agenda pages.
package richtext

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// The parser configuration never changes and goldmark.Markdown is safe to
// share; per-call state lives in the reader created by Convert.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		// Raw HTML stays disabled so publisher comments cannot inject
		// markup; goldmark escapes it by default.
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
		)
	})
	return markdownInstance
}

// Renderer converts Markdown comments to sanitized HTML fragments.
type Renderer struct{}

// New returns a Markdown rich-text renderer.
func New() Renderer {
	return Renderer{}
}

// RenderHTML converts one Markdown document to an HTML fragment.
func (Renderer) RenderHTML(source string) (string, error) {
	if source == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
