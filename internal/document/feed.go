package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"tfidfsum/internal/domain"
)

// errEmptyFeed marks input that parses as a feed but carries no item text,
// e.g. an arbitrary JSON object.
var errEmptyFeed = errors.New("feed has no item text")

// extractFeed joins the text of every feed item into one paragraph per item.
// Item content wins over description, the title is used when both are empty.
func extractFeed(buf []byte) (domain.Document, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(buf))
	if err != nil {
		return domain.Document{}, fmt.Errorf("parse feed: %w", err)
	}

	paragraphs := make([]string, 0, len(feed.Items))

	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		text := stripHTML(item.Content)
		if text == "" {
			text = stripHTML(item.Description)
		}
		if text == "" {
			text = strings.TrimSpace(item.Title)
		}
		if text == "" {
			continue
		}

		paragraphs = append(paragraphs, text)
	}

	if len(paragraphs) == 0 {
		return domain.Document{}, errEmptyFeed
	}

	return domain.Document{
		Title:  strings.TrimSpace(feed.Title),
		Text:   strings.Join(paragraphs, "\n\n"),
		Format: domain.FormatFeed,
	}, nil
}
