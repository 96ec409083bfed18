package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidfsum/internal/document"
	"tfidfsum/internal/domain"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Feed</title>
    <link>https://example.com</link>
    <description>Feed description</description>
    <item>
      <title>First item</title>
      <description><![CDATA[<p>Solar output doubled this year.</p>]]></description>
    </item>
    <item>
      <title>Title only item</title>
    </item>
  </channel>
</rss>`

func TestExtractPlainTextPassesThrough(t *testing.T) {
	input := "Plain text stays.   Even   spacing stays.\n"

	doc, err := document.Extract([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatPlain, doc.Format)
	assert.Equal(t, input, doc.Text)
}

func TestExtractEmpty(t *testing.T) {
	doc, err := document.Extract([]byte(" \n "))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatPlain, doc.Format)
	assert.Empty(t, doc.Text)
}

func TestExtractHTML(t *testing.T) {
	input := `<!DOCTYPE html>
<html>
<head><title> Page title </title><style>p { color: red; }</style></head>
<body>
  <h1>Heading</h1>
  <p>First   sentence here.</p>
  <p>Second<br>line.</p>
  <script>var hidden = true;</script>
</body>
</html>`

	doc, err := document.Extract([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatHTML, doc.Format)
	assert.Equal(t, "Page title", doc.Title)
	assert.Equal(t, "Heading\nFirst sentence here.\nSecond\nline.", doc.Text)
}

func TestExtractRSSFeed(t *testing.T) {
	doc, err := document.Extract([]byte(rssFixture))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatFeed, doc.Format)
	assert.Equal(t, "Example Feed", doc.Title)
	assert.Equal(t, "Solar output doubled this year.\n\nTitle only item", doc.Text)
}

func TestExtractBrokenFeedFallsBackToText(t *testing.T) {
	input := "{ this is not a json feed at all"

	doc, err := document.Extract([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatPlain, doc.Format)
	assert.Equal(t, input, doc.Text)
}

func TestExtractJSONWithoutFeedItemsIsPlainText(t *testing.T) {
	input := `{"note": "Solar panels convert sunlight. Solar panels are cheap. Cats sleep."}`

	doc, err := document.Extract([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatPlain, doc.Format)
	assert.Equal(t, input, doc.Text)
}

func TestExtractFeedWithoutItemTextIsPlainText(t *testing.T) {
	input := `<?xml version="1.0"?><rss version="2.0"><channel><title>Empty</title></channel></rss>`

	doc, err := document.Extract([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, domain.FormatPlain, doc.Format)
	assert.Equal(t, input, doc.Text)
}

func TestExtractFindsDistinctLinks(t *testing.T) {
	input := "See https://example.com/a and http://example.org then https://example.com/a again"

	doc, err := document.Extract([]byte(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com/a", "http://example.org"}, doc.Links)
}

func TestExtractWithoutLinks(t *testing.T) {
	doc, err := document.Extract([]byte("No links in here."))
	require.NoError(t, err)

	assert.Nil(t, doc.Links)
}
