package siteindex

import "context"

// Default configuration values. They match the conventions of the static
// sites this tool indexes; all of them can be overridden from the CLI.
const (
	// DefaultMaxContentLength caps the body text kept per page, in runes.
	// Larger values make search.json slow to load in the browser.
	DefaultMaxContentLength = 3000

	// DefaultNavFilename is the conventional name of the navigation-tree
	// document used to derive breadcrumbs.
	DefaultNavFilename = "___left.htm"

	// DefaultOutputFilename is the name of the JSON artifact written at the
	// site root.
	DefaultOutputFilename = "search.json"
)

// DefaultSkipSubstrings lists filename fragments that mark a file as
// non-content (generated chrome, index shells, the search page itself,
// editor placeholder pages). Matching is by substring, not exact name.
func DefaultSkipSubstrings() []string {
	return []string{"___", "index", "search", "$$unsavedpage"}
}

// PageRecord is one indexed entry in the final search artifact.
type PageRecord struct {
	Title   string `json:"title"`
	URL     string `json:"url"` // relative to the site root, forward-slash separated
	Content string `json:"content"`
	Path    string `json:"path,omitempty"` // breadcrumb, present only when resolved
}

// Validate returns an error if the record contains invalid fields.
func (p *PageRecord) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page record URL required")
	}
	return nil
}

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the trimmed text of the document's title element.
	// Empty when the document declares no title; callers fall back to the
	// file's base name.
	Title string

	// Content is the flattened, whitespace-collapsed body text, truncated
	// to the extractor's configured maximum length.
	Content string
}

// Extractor extracts searchable text from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the title and flattened body
	// text. Script, style, and navigation-widget chrome never appear in
	// the content.
	Extract(html string) (*ExtractResult, error)
}

// RunSummary reports the outcome of one index build. It is observational
// only; nothing reads it back after the run.
type RunSummary struct {
	// Indexed is the number of page records written to the artifact.
	Indexed int

	// Skipped counts files excluded by the skip-substring filter.
	Skipped int

	// Errors counts files that failed to read or parse. Such files are
	// excluded from the artifact; the run continues.
	Errors int

	// Breadcrumbs counts records that carry a resolved breadcrumb path.
	Breadcrumbs int

	// Duplicates counts pages whose extracted content is byte-identical to
	// an earlier page. Duplicates still appear in the artifact.
	Duplicates int

	// OutputBytes is the size of the written artifact.
	OutputBytes int64
}

// IndexBuilder builds a search index for a site directory.
type IndexBuilder interface {
	// Build walks root, indexes every eligible HTML file, and writes the
	// JSON artifact under root. It returns a summary of the run.
	Build(ctx context.Context, root string) (*RunSummary, error)
}
