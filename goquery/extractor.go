// Package goquery implements HTML text extraction using PuerkitoBio/goquery.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteindex"
	"golang.org/x/net/html"
)

// treeWidgetSelector matches the dTree navigation widget some pages embed
// inline. Its node labels would otherwise pollute the indexed text.
const treeWidgetSelector = ".dtree"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Ensure Extractor implements siteindex.Extractor at compile time.
var _ siteindex.Extractor = (*Extractor)(nil)

// Extractor extracts searchable text from HTML pages.
type Extractor struct {
	maxContentLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMaxContentLength sets the maximum content length in runes.
// Values <= 0 disable truncation.
func WithMaxContentLength(n int) Option {
	return func(e *Extractor) {
		e.maxContentLength = n
	}
}

// NewExtractor creates a new Extractor with the default content cap.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{maxContentLength: siteindex.DefaultMaxContentLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the title and flattened body text.
// The title is the trimmed text of the title element and may be empty.
// Content is the visible text of the body with script, style, and tree
// widget subtrees removed, whitespace collapsed, and the result truncated
// to the configured maximum length.
func (e *Extractor) Extract(rawHTML string) (*siteindex.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteindex.Errorf(siteindex.EINVALID, "failed to parse HTML: %v", err)
	}

	// Drop subtrees whose text must not leak into content.
	doc.Find("script, style").Remove()
	doc.Find(treeWidgetSelector).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	content := flattenText(doc.Find("body"))
	content = strings.TrimSpace(whitespaceRe.ReplaceAllString(content, " "))
	content = truncateRunes(content, e.maxContentLength)

	return &siteindex.ExtractResult{
		Title:   title,
		Content: content,
	}, nil
}

// flattenText collects every text node under sel, joined with single
// spaces. Joining with a separator keeps words from adjacent elements
// (e.g. table cells) from running together.
func flattenText(sel *goquery.Selection) string {
	var parts []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}

// truncateRunes cuts s to at most max runes. Truncation is rune-based
// because the indexed sites are CJK-heavy and a byte cut would split
// characters; it may still cut mid-word, which the search page tolerates.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
