package meeting

import "strings"

const sentencesPerParagraph = 3

// FormatTranscript splits raw transcript text into sentences on terminal
// punctuation followed by whitespace and regroups them into paragraphs of
// three, separated by blank lines. Splitting on punctuation is heuristic and
// will mis-split on abbreviations and decimals; that is a known limitation of
// this formatter, not something it tries to correct.
func FormatTranscript(raw string) string {
	sentences := splitSentences(raw)
	if len(sentences) == 0 {
		return ""
	}

	var paragraphs []string
	for i := 0; i < len(sentences); i += sentencesPerParagraph {
		end := i + sentencesPerParagraph
		if end > len(sentences) {
			end = len(sentences)
		}
		paragraphs = append(paragraphs, strings.Join(sentences[i:end], " "))
	}
	return strings.Join(paragraphs, "\n\n")
}

func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}
		// absorb a run like "?!" or "..."
		j := i
		for j+1 < len(text) && isTerminal(text[j+1]) {
			j++
		}
		if j+1 < len(text) && !isSpace(text[j+1]) {
			i = j
			continue
		}
		if s := strings.TrimSpace(text[start : j+1]); s != "" {
			sentences = append(sentences, s)
		}
		start = j + 1
		i = j
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
