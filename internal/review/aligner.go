package review

import "strings"

// sentencePrefixLen is how many characters of a reported sentence are
// used for the literal fallback search.
const sentencePrefixLen = 50

// AlignSentence resolves a model-reported sentence to a best-effort
// (start, end) byte range in the original content. The reported text is
// not guaranteed to be an exact substring of the content: the model may
// paraphrase, truncate or re-punctuate. Matching order:
//
//  1. the first span whose trimmed text contains the trimmed reported
//     sentence, or is itself contained in it;
//  2. a literal search for the reported sentence's first 50 characters,
//     with the end offset taken from the reported sentence's length;
//  3. a forced (0, len(reported)) range.
//
// The end offset of the fallback branches can overrun the true sentence
// boundary. That is accepted behavior: the aligner never fails, it only
// approximates.
func AlignSentence(content string, spans []SentenceSpan, reported string) (int, int) {
	trimmed := strings.TrimSpace(reported)

	start, end := -1, -1
	for _, span := range spans {
		spanText := strings.TrimSpace(span.Text)
		if strings.Contains(spanText, trimmed) || strings.Contains(trimmed, spanText) {
			start, end = span.Start, span.End
			break
		}
	}

	if start == -1 {
		if p := strings.Index(content, runePrefix(reported, sentencePrefixLen)); p >= 0 {
			start = p
			end = p + len(reported)
		}
	}

	if start < 0 {
		start = 0
	}
	if end <= 0 {
		end = len(reported)
	}
	return start, end
}

// runePrefix returns the first n runes of s without cutting a rune in
// half.
func runePrefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
