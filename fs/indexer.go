// Package fs builds the search index from a site directory on disk.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/siteindex"
	"golang.org/x/net/html/charset"
)

// Ensure Indexer implements siteindex.IndexBuilder at compile time.
var _ siteindex.IndexBuilder = (*Indexer)(nil)

// Indexer walks a site directory, extracts text from every eligible HTML
// file, attaches breadcrumbs from the navigation document, and writes the
// JSON artifact at the site root. A single Build call owns all state; the
// run is fully sequential.
type Indexer struct {
	// Extractor extracts title and body text from each page. Required.
	Extractor siteindex.Extractor

	// Logger receives per-file diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Skip lists filename substrings that exclude a file from indexing.
	// Defaults to siteindex.DefaultSkipSubstrings().
	Skip []string

	// NavFilename is the navigation document read for breadcrumbs,
	// relative to the site root. Defaults to siteindex.DefaultNavFilename.
	NavFilename string

	// OutputFilename is the artifact written at the site root.
	// Defaults to siteindex.DefaultOutputFilename.
	OutputFilename string
}

// Build walks root and writes the search index artifact under it.
// Per-file failures are counted and logged but never abort the run; a
// failure to write the artifact does.
func (ix *Indexer) Build(ctx context.Context, root string) (*siteindex.RunSummary, error) {
	if ix.Extractor == nil {
		return nil, siteindex.Errorf(siteindex.EINVALID, "indexer extractor required")
	}

	logger := ix.Logger
	if logger == nil {
		logger = slog.Default()
	}
	skip := ix.Skip
	if skip == nil {
		skip = siteindex.DefaultSkipSubstrings()
	}
	navFilename := ix.NavFilename
	if navFilename == "" {
		navFilename = siteindex.DefaultNavFilename
	}
	outputFilename := ix.OutputFilename
	if outputFilename == "" {
		outputFilename = siteindex.DefaultOutputFilename
	}

	crumbs := ix.loadBreadcrumbs(root, navFilename, logger)

	summary := &siteindex.RunSummary{}
	records := []siteindex.PageRecord{}
	seenContent := make(map[string]bool)

	walkErr := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			if path == root {
				return err
			}
			summary.Errors++
			logger.Warn("cannot access path", "path", path, "err", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if !strings.HasSuffix(name, ".htm") && !strings.HasSuffix(name, ".html") {
			return nil
		}
		if matchesAny(name, skip) {
			summary.Skipped++
			logger.Debug("skipping file", "file", name)
			return nil
		}

		record, err := ix.indexFile(root, path)
		if err != nil {
			summary.Errors++
			logger.Warn("failed to index file", "file", name, "err", err)
			return nil
		}

		if crumb, ok := crumbs[record.URL]; ok && crumb != "" {
			record.Path = crumb
			summary.Breadcrumbs++
		}

		hash := siteindex.ContentHash(record.Content)
		if seenContent[hash] {
			summary.Duplicates++
			logger.Debug("duplicate content", "file", name)
		}
		seenContent[hash] = true

		logger.Debug("indexed page", "url", record.URL, "title", record.Title)
		records = append(records, *record)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Title < records[j].Title
	})
	summary.Indexed = len(records)

	size, err := writeArtifact(filepath.Join(root, outputFilename), records)
	if err != nil {
		return nil, err
	}
	summary.OutputBytes = size

	return summary, nil
}

// indexFile reads and extracts a single page, returning its record.
func (ix *Indexer) indexFile(root, path string) (*siteindex.PageRecord, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, err
	}
	url := filepath.ToSlash(rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	res, err := ix.Extractor.Extract(decodeText(data))
	if err != nil {
		return nil, err
	}

	title := res.Title
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	record := &siteindex.PageRecord{
		Title:   title,
		URL:     url,
		Content: res.Content,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// loadBreadcrumbs reads the navigation document and resolves breadcrumbs.
// A missing document is not an error; the breadcrumb feature degrades to
// absent and every record is written without a path field.
func (ix *Indexer) loadBreadcrumbs(root, navFilename string, logger *slog.Logger) map[string]string {
	data, err := os.ReadFile(filepath.Join(root, navFilename))
	if errors.Is(err, iofs.ErrNotExist) {
		logger.Info("navigation document not found; skipping breadcrumbs", "file", navFilename)
		return map[string]string{}
	}
	if err != nil {
		logger.Warn("cannot read navigation document; skipping breadcrumbs", "file", navFilename, "err", err)
		return map[string]string{}
	}

	crumbs := siteindex.BuildBreadcrumbs(decodeText(data))
	logger.Info("breadcrumbs resolved", "file", navFilename, "count", len(crumbs))
	return crumbs
}

// writeArtifact serializes records as a JSON array and returns the file
// size. Non-ASCII text is written literally; the search page consumes the
// artifact as UTF-8.
func writeArtifact(path string, records []siteindex.PageRecord) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// decodeText converts raw file bytes to UTF-8 text. Valid UTF-8 passes
// through untouched: the charset sniffer only examines the first 1024
// bytes, and a UTF-8 page with a long ASCII head would be misread as
// windows-1252. Legacy pages (declared Big5, GBK, ...) go through the
// charset reader; any byte sequences still invalid after conversion are
// dropped rather than failing the read.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	r, err := charset.NewReader(bytes.NewReader(data), "text/html")
	if err == nil {
		if decoded, derr := io.ReadAll(r); derr == nil {
			data = decoded
		}
	}
	return strings.ToValidUTF8(string(data), "")
}

// matchesAny reports whether name contains any of the given substrings.
func matchesAny(name string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
