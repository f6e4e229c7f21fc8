package generator

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// countTokens estimates the token count of a prompt for diagnostics. Returns
// zero when the encoding is unavailable; the count is informational only.
func countTokens(text string) int {
	encodingOnce.Do(func() {
		encoding, _ = tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	})
	if encoding == nil {
		return 0
	}
	return len(encoding.Encode(text, nil, nil))
}
