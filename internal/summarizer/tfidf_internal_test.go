package summarizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpusScore(t *testing.T) {
	c := newCorpus([][]string{
		{"solar", "panels", "solar"},
		{"panels", "cheap"},
		{},
	})

	idfSolar := math.Log10(3.0 / 2.0)
	idfPanels := math.Log10(3.0 / 2.0)
	idfCheap := math.Log10(3.0 / 1.0)

	// Repeated tokens contribute once per occurrence.
	wantFirst := 2*(2.0/3.0)*idfSolar + (1.0/3.0)*idfPanels
	wantSecond := 0.5*idfPanels + 0.5*idfCheap

	assert.InDelta(t, wantFirst, c.score(0), 1e-12)
	assert.InDelta(t, wantSecond, c.score(1), 1e-12)
	assert.Zero(t, c.score(2))
}

func TestSelectSentencesTiesKeepDocumentOrder(t *testing.T) {
	sentences := []string{"a.", "b.", "c.", "d."}
	scores := []float64{1, 2, 2, 1}

	assert.Equal(t, "b. c.", selectSentences(sentences, scores, 0.5, false))
	assert.Equal(t, "b. c. a.", selectSentences(sentences, scores, 0.75, false))
	assert.Equal(t, "a. b. c.", selectSentences(sentences, scores, 0.75, true))
}
