// Package meeting holds the core decisions of the transcription-to-analysis
// pipeline: duration estimation, transcript formatting, analysis parameter
// selection, prompt construction, and title extraction.
package meeting

import "strings"

// Mode selects the shape of the analysis breakdown.
type Mode string

const (
	ModeFlat     Mode = "flat"
	ModeChapters Mode = "chapters"
)

// Strategy selects the signal used to size the analysis.
type Strategy string

const (
	StrategyDuration Strategy = "duration"
	StrategySize     Strategy = "size"
)

// Transcript is the normalized output of the transcription stage. Raw is the
// engine output untouched; Formatted groups it into readable paragraphs.
type Transcript struct {
	Raw       string
	Formatted string
}

func NewTranscript(raw string) Transcript {
	return Transcript{Raw: raw, Formatted: FormatTranscript(raw)}
}

func (t Transcript) Words() int {
	return len(strings.Fields(t.Raw))
}
