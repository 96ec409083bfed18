package domain

type Format string

const (
	FormatPlain Format = "plain"
	FormatHTML  Format = "html"
	FormatFeed  Format = "feed"
)

// Document is the text extracted from an input buffer.
type Document struct {
	Title  string
	Text   string
	Format Format
	// Links lists the distinct URLs mentioned in Text.
	Links []string
}

// Summary is the outcome of one summarization run.
type Summary struct {
	Text          string
	ElapsedMillis int64
}
