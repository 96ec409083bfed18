package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tfidfsum/internal/domain"
)

const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr, section, article"

func extractHTML(buf []byte) (domain.Document, error) {
	text, title, err := htmlText(bytes.NewReader(buf))
	if err != nil {
		return domain.Document{}, err
	}

	return domain.Document{
		Title:  title,
		Text:   text,
		Format: domain.FormatHTML,
	}, nil
}

// htmlText returns the visible text of an HTML fragment or page and its <title>.
func htmlText(r io.Reader) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", fmt.Errorf("create document from reader: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("head, script, style, noscript, template").Remove()
	doc.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		block.AppendHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return normalizeLines(doc.Text()), title, nil
	}

	return normalizeLines(body.Text()), title, nil
}

// stripHTML reduces an HTML fragment, such as a feed item description, to text.
// Fragments that fail to parse are returned with whitespace normalized.
func stripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return normalizeLines(fragment)
	}

	text, _, err := htmlText(strings.NewReader(fragment))
	if err != nil {
		return normalizeLines(fragment)
	}

	return text
}
