// Package document turns a loaded input buffer into plain text ready for summarization.
package document

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"tfidfsum/internal/domain"
)

// sniffLen matches the amount of data http.DetectContentType considers.
const sniffLen = 512

// Extract detects the format of buf and returns its text content.
// Feeds and HTML are reduced to their visible text, anything else passes through unchanged.
func Extract(buf []byte) (domain.Document, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return domain.Document{Format: domain.FormatPlain}, nil
	}

	// Text that merely looks like a feed, or a feed without item text, falls through to the
	// HTML and plain text paths.
	if gofeed.DetectFeedType(bytes.NewReader(buf)) != gofeed.FeedTypeUnknown {
		if doc, err := extractFeed(buf); err == nil {
			doc.Links = findLinks(doc.Text)
			return doc, nil
		}
	}

	if isHTML(buf) {
		doc, err := extractHTML(buf)
		if err != nil {
			return domain.Document{}, fmt.Errorf("extract html: %w", err)
		}
		doc.Links = findLinks(doc.Text)
		return doc, nil
	}

	text := string(buf)

	return domain.Document{
		Text:   text,
		Format: domain.FormatPlain,
		Links:  findLinks(text),
	}, nil
}

func isHTML(buf []byte) bool {
	head := buf[:min(len(buf), sniffLen)]
	return strings.HasPrefix(http.DetectContentType(head), "text/html")
}

// normalizeLines collapses runs of whitespace inside each line and drops blank lines.
func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]

	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
