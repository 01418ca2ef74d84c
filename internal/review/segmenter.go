// Package review implements the content review pipeline: sentence
// segmentation, offset alignment of model feedback, and the service
// that ties them to the generation backend.
package review

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SentenceSpan is a contiguous slice of the submitted content.
// Start/End are half-open byte offsets into the content.
type SentenceSpan struct {
	Text  string
	Start int
	End   int
}

// SplitSentences splits content into ordered, non-overlapping sentence
// spans. The splitter is deliberately naive: it cuts on whitespace that
// immediately follows '.', '!' or '?', so abbreviations and quotations
// may over- or under-split. Downstream matching only needs approximate
// alignment, not grammatical correctness.
func SplitSentences(content string) []SentenceSpan {
	fragments := splitFragments(content)

	spans := make([]SentenceSpan, 0, len(fragments))
	cursor := 0
	for _, frag := range fragments {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		// Monotonic scan: search forward from the end of the previous
		// span so duplicate sentences never re-match an earlier
		// occurrence. Fragments that cannot be located are dropped.
		idx := strings.Index(content[cursor:], frag)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		end := start + len(frag)
		spans = append(spans, SentenceSpan{Text: frag, Start: start, End: end})
		cursor = end
	}
	return spans
}

// splitFragments cuts content at every whitespace run that immediately
// follows a sentence-terminal punctuation mark. The whitespace itself is
// consumed and belongs to no fragment.
func splitFragments(content string) []string {
	var fragments []string
	start := 0

	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		if r == '.' || r == '!' || r == '?' {
			j := i + size
			next, nextSize := utf8.DecodeRuneInString(content[j:])
			if j < len(content) && unicode.IsSpace(next) {
				fragments = append(fragments, content[start:j])
				j += nextSize
				for j < len(content) {
					ws, wsSize := utf8.DecodeRuneInString(content[j:])
					if !unicode.IsSpace(ws) {
						break
					}
					j += wsSize
				}
				start = j
				i = j
				continue
			}
		}
		i += size
	}

	return append(fragments, content[start:])
}
