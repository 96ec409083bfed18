package summarizer

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/reugn/go-streams/flow"

	"tfidfsum/internal/tokenizer"
)

// TFIDF is an extractive summarizer. Every sentence is scored by the sum of the TF-IDF
// weights of its tokens, where each sentence counts as one document, and the highest
// scoring sentences are kept.
type TFIDF struct {
	tokenizer     *tokenizer.Tokenizer
	parallelism   int
	preserveOrder bool
}

type Option func(*TFIDF)

// WithParallelism scores sentences on n goroutines. Values below 2 keep scoring sequential.
func WithParallelism(n int) Option {
	return func(t *TFIDF) {
		t.parallelism = n
	}
}

// WithPreserveOrder emits the kept sentences in document order instead of score order.
func WithPreserveOrder() Option {
	return func(t *TFIDF) {
		t.preserveOrder = true
	}
}

func NewTFIDF(tok *tokenizer.Tokenizer, opts ...Option) *TFIDF {
	t := &TFIDF{
		tokenizer:   tok,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Summarize keeps int(ratio * sentences) sentences, best first, joined by a space.
func (t *TFIDF) Summarize(ctx context.Context, input Input) (string, error) {
	if err := ValidateRatio(input.Ratio); err != nil {
		return "", err
	}

	if !utf8.ValidString(input.Text) {
		return "", ErrInvalidUTF8
	}

	sentences := t.tokenizer.SplitSentences(input.Text)
	if len(sentences) == 0 {
		return "", nil
	}

	tokens := make([][]string, len(sentences))
	for i, sentence := range sentences {
		tokens[i] = t.tokenizer.Tokens(sentence)
	}

	c := newCorpus(tokens)

	var scores []float64
	if t.parallelism > 1 && len(sentences) > 1 {
		scores = c.scoreParallel(t.parallelism)
	} else {
		scores = c.scoreSequential()
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return selectSentences(sentences, scores, input.Ratio, t.preserveOrder), nil
}

// corpus holds the tokenized sentences and how often each token occurs across all of them.
type corpus struct {
	tokens      [][]string
	occurrences map[string]int
}

func newCorpus(tokens [][]string) *corpus {
	occurrences := make(map[string]int)
	for _, sentenceTokens := range tokens {
		for _, token := range sentenceTokens {
			occurrences[token]++
		}
	}

	return &corpus{
		tokens:      tokens,
		occurrences: occurrences,
	}
}

func (c *corpus) scoreSequential() []float64 {
	scores := make([]float64, len(c.tokens))
	for i := range c.tokens {
		scores[i] = c.score(i)
	}
	return scores
}

type sentenceScore struct {
	index int
	score float64
}

// scoreParallel fans sentence indexes out through a stream Map stage. Results arrive in any
// order and are placed back by index, so the output equals scoreSequential.
func (c *corpus) scoreParallel(parallelism int) []float64 {
	scoreStage := flow.NewMap(func(i int) sentenceScore {
		return sentenceScore{index: i, score: c.score(i)}
	}, parallelism)

	go func() {
		for i := range c.tokens {
			scoreStage.In() <- i
		}
		close(scoreStage.In())
	}()

	scores := make([]float64, len(c.tokens))
	for out := range scoreStage.Out() {
		s := out.(sentenceScore)
		scores[s.index] = s.score
	}

	return scores
}

// score sums TF * IDF over every token of sentence i, repeated tokens included.
func (c *corpus) score(i int) float64 {
	sentenceTokens := c.tokens[i]
	if len(sentenceTokens) == 0 {
		return 0
	}

	freq := tokenizer.Frequencies(sentenceTokens)
	numTokens := float64(len(sentenceTokens))
	numDocs := float64(len(c.tokens))

	var sum float64
	for _, token := range sentenceTokens {
		tf := float64(freq[token]) / numTokens
		idf := math.Log10(numDocs / float64(c.occurrences[token]))
		sum += tf * idf
	}

	return sum
}

func selectSentences(sentences []string, scores []float64, ratio float64, preserveOrder bool) string {
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}

	// Stable so that equally scored sentences keep document order.
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})

	keep := order[:SentenceBudget(ratio, len(sentences))]
	if preserveOrder {
		slices.Sort(keep)
	}

	kept := make([]string, len(keep))
	for i, idx := range keep {
		kept[i] = sentences[idx]
	}

	return strings.Join(kept, " ")
}
