package summarizer

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidUTF8  = errors.New("text is not valid UTF-8")
	ErrInvalidRatio = errors.New("ratio must be in (0, 1]")
)

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the original plain text to summarise.
	Text string
	// Ratio is the fraction of sentences kept in the summary.
	Ratio float64
	// Source optionally names where the text came from, e.g. the input path.
	Source string
}

// Summarizer produces a single summary for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (string, error)
}

// ValidateRatio rejects ratios outside (0, 1].
func ValidateRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio <= 0 || ratio > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	return nil
}

// SentenceBudget is the number of sentences a summary of total sentences keeps at ratio.
func SentenceBudget(ratio float64, total int) int {
	return int(ratio * float64(total))
}
