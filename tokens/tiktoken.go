package tokens

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// TiktokenEncoding is the BPE encoding used by TiktokenCounter.
// cl100k_base tracks GPT-4 and approximates Claude closely enough
// for budgeting purposes.
const TiktokenEncoding = "cl100k_base"

// TiktokenCounter counts tokens with a real BPE encoding instead of
// the chars-per-token heuristic. Slower than EstimatingCounter but
// exact for cl100k_base-tokenized models.
type TiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter creates a counter backed by the cl100k_base encoding.
// The encoding tables are loaded on first use and cached by the tiktoken
// library, so construct once and share.
func NewTiktokenCounter() (*TiktokenCounter, error) {
	enc, err := tiktoken.GetEncoding(TiktokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("get %s encoding: %w", TiktokenEncoding, err)
	}
	return &TiktokenCounter{enc: enc}, nil
}

// Count returns the exact number of cl100k_base tokens in text.
func (c *TiktokenCounter) Count(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *TiktokenCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}
