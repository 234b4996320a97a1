// Package split decomposes one oversized input into a restartable
// sequence of token-budgeted chunks.
//
// A Splitter tokenizes its input once and then hands out consecutive
// token ranges, each decoded back to text, sized to fit the model's
// context window after reserving room for caller-supplied data that
// accompanies every chunk (for example an accumulating summary in a
// reduce-style loop):
//
//	s := split.New(bigDocument, model)
//	summary := ""
//	for !s.Done() {
//	    var chunk string
//	    chunk, s = s.NextChunk(summary)
//	    if chunk == "" {
//	        break // accompanying data alone exceeds the window
//	    }
//	    summary = summarize(summary, chunk)
//	}
//
// Splitter values are immutable: NextChunk returns the advanced state
// and leaves the receiver usable, so a caller can retry a failed model
// call by reusing the pre-call state. Provided the tokenizer
// round-trips and every accompanying input fits the context window,
// the concatenation of all returned chunks reconstructs the original
// tokenized input exactly once, with no gap or overlap.
//
// A Splitter has no error states. Budget exhaustion, terminal
// completion, and over-budget accompanying input all degrade to an
// empty-chunk return; treat an empty chunk as "no more work".
package split

import (
	"github.com/randalmurphal/promptkit/tokens"
)

// Splitter walks one tokenized input in context-window-sized steps.
// The zero value is not useful; construct with New.
type Splitter struct {
	model       tokens.Model
	inputTokens []int
	offset      int
	done        bool
}

// New creates a Splitter over the input, tokenizing it once with the
// model's tokenizer.
func New(input string, model tokens.Model) Splitter {
	return Splitter{
		model:       model,
		inputTokens: model.Tokenizer.Encode(input),
	}
}

// Offset returns the number of input tokens consumed so far.
// It is monotonically non-decreasing across NextChunk calls.
func (s Splitter) Offset() int {
	return s.offset
}

// Done reports whether the input has been fully consumed.
// Once true it never reverts.
func (s Splitter) Done() bool {
	return s.done
}

// Remaining returns the number of input tokens not yet consumed.
func (s Splitter) Remaining() int {
	return len(s.inputTokens) - s.offset
}

// NextChunk returns the next chunk of input text and the advanced
// Splitter state. The chunk is sized so that chunk tokens plus the
// tokens of bespoke (data accompanying the chunk in the eventual model
// call) fit within the model's context window.
//
// A done Splitter returns ("", unchanged). If bespoke alone meets or
// exceeds the context window the call returns ("", unchanged) as well:
// the budget is clamped, not an error, and the splitter stays usable
// with smaller accompanying input.
func (s Splitter) NextChunk(bespoke string) (string, Splitter) {
	if s.done {
		return "", s
	}

	bespokeLen := len(s.model.Tokenizer.Encode(bespoke))
	budget := s.model.ContextWindow - bespokeLen
	if budget <= 0 {
		return "", s
	}

	end := s.offset + budget
	if end > len(s.inputTokens) {
		end = len(s.inputTokens)
	}

	chunk := s.model.Tokenizer.Decode(s.inputTokens[s.offset:end])

	next := s
	next.offset = end
	if next.offset >= len(next.inputTokens) {
		next.done = true
	}
	return chunk, next
}
