// Package tokenizer splits text into sentences and sentences into scoring tokens.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Tokenizer wraps a Punkt sentence tokenizer trained on English text.
// It is safe for concurrent use after construction.
type Tokenizer struct {
	sentences *sentences.DefaultSentenceTokenizer
}

func New() (*Tokenizer, error) {
	st, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("create sentence tokenizer: %w", err)
	}

	return &Tokenizer{
		sentences: st,
	}, nil
}

// SplitSentences returns the non-empty sentences of text in document order.
// Whitespace runs inside a sentence, line breaks included, become a single space.
func (t *Tokenizer) SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	found := t.sentences.Tokenize(text)
	result := make([]string, 0, len(found))

	for _, s := range found {
		sentence := strings.Join(strings.Fields(s.Text), " ")
		if sentence == "" {
			continue
		}
		result = append(result, sentence)
	}

	return result
}

// Tokens splits sentence on whitespace and drops stopwords.
func (t *Tokenizer) Tokens(sentence string) []string {
	fields := strings.Fields(sentence)
	tokens := fields[:0]

	for _, field := range fields {
		if IsStopword(field) {
			continue
		}
		tokens = append(tokens, field)
	}

	return tokens
}

// Frequencies counts the occurrences of every token.
func Frequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, token := range tokens {
		freq[token]++
	}
	return freq
}
