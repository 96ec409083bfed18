package summarizer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidfsum/internal/summarizer"
	"tfidfsum/internal/tokenizer"
)

const solarText = "Solar panels convert sunlight. Solar panels are cheap. Cats sleep."

func newTokenizer(t *testing.T) *tokenizer.Tokenizer {
	t.Helper()

	tok, err := tokenizer.New()
	require.NoError(t, err)

	return tok
}

func TestTFIDFSummarizeRanksSentences(t *testing.T) {
	tok := newTokenizer(t)

	tests := []struct {
		name  string
		ratio float64
		opts  []summarizer.Option
		want  string
	}{
		{
			name:  "half keeps the best sentence",
			ratio: 0.5,
			want:  "Cats sleep.",
		},
		{
			name:  "full ratio keeps everything in score order",
			ratio: 1,
			want:  "Cats sleep. Solar panels convert sunlight. Solar panels are cheap.",
		},
		{
			name:  "preserve order re-sorts kept sentences",
			ratio: 0.67,
			opts:  []summarizer.Option{summarizer.WithPreserveOrder()},
			want:  "Solar panels convert sunlight. Cats sleep.",
		},
		{
			name:  "tiny ratio keeps nothing",
			ratio: 0.1,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := summarizer.NewTFIDF(tok, tt.opts...)

			got, err := s.Summarize(context.Background(), summarizer.Input{
				Text:  solarText,
				Ratio: tt.ratio,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTFIDFSummarizeRejectsBadInput(t *testing.T) {
	s := summarizer.NewTFIDF(newTokenizer(t))

	_, err := s.Summarize(context.Background(), summarizer.Input{Text: "Fine text.", Ratio: 0})
	require.ErrorIs(t, err, summarizer.ErrInvalidRatio)

	_, err = s.Summarize(context.Background(), summarizer.Input{Text: "Fine text.", Ratio: 1.5})
	require.ErrorIs(t, err, summarizer.ErrInvalidRatio)

	_, err = s.Summarize(context.Background(), summarizer.Input{Text: "bad \xff byte.", Ratio: 0.5})
	require.ErrorIs(t, err, summarizer.ErrInvalidUTF8)
}

func TestTFIDFSummarizeEmptyText(t *testing.T) {
	s := summarizer.NewTFIDF(newTokenizer(t))

	got, err := s.Summarize(context.Background(), summarizer.Input{Text: "   ", Ratio: 0.5})
	require.NoError(t, err)

	assert.Empty(t, got)
}

func TestTFIDFParallelMatchesSequential(t *testing.T) {
	tok := newTokenizer(t)

	var b strings.Builder
	for i := range 200 {
		fmt.Fprintf(&b, "Report %d covers topic%d with detail%d and shared words. ", i, i%7, i%13)
	}
	input := summarizer.Input{Text: b.String(), Ratio: 0.3}

	sequential, err := summarizer.NewTFIDF(tok).Summarize(context.Background(), input)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 16} {
		parallel, err := summarizer.NewTFIDF(tok, summarizer.WithParallelism(workers)).
			Summarize(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, sequential, parallel, "workers=%d", workers)
	}
}

func TestTFIDFIsDeterministic(t *testing.T) {
	s := summarizer.NewTFIDF(newTokenizer(t))
	input := summarizer.Input{Text: solarText, Ratio: 0.67}

	first, err := s.Summarize(context.Background(), input)
	require.NoError(t, err)

	for range 5 {
		again, err := s.Summarize(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSentenceBudget(t *testing.T) {
	assert.Equal(t, 5, summarizer.SentenceBudget(0.5, 10))
	assert.Equal(t, 0, summarizer.SentenceBudget(0.5, 1))
	assert.Equal(t, 3, summarizer.SentenceBudget(0.6, 6))
	assert.Equal(t, 7, summarizer.SentenceBudget(1, 7))
}
