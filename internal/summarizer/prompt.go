package summarizer

import (
	"fmt"
	"strings"

	"tfidfsum/internal/tokenizer"
)

const systemPrompt = `You are an extractive summarizer.

Rules:
- Select the most important sentences of the document.
- Copy each selected sentence verbatim; never rephrase, merge or translate.
- Keep exactly the requested number of sentences, ordered from most to least important.
- Separate sentences with a single space and output nothing else.`

// extractivePrompt builds the user message for remote providers and returns the number of
// sentences requested. A budget of zero means no call is needed.
func extractivePrompt(tok *tokenizer.Tokenizer, input Input) (string, int) {
	budget := SentenceBudget(input.Ratio, len(tok.SplitSentences(input.Text)))

	var b strings.Builder
	if source := strings.TrimSpace(input.Source); source != "" {
		b.WriteString("Source:\n")
		b.WriteString(source)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Sentences to keep: %d\n", budget)
	b.WriteString("Content:\n")
	b.WriteString(input.Text)

	return b.String(), budget
}
