package meeting

import (
	"math"
	"strings"
	"time"
)

// WordsPerMinute is the speaking-rate heuristic behind the word-count fallback.
const WordsPerMinute = 150

// EstimateDuration picks the best available duration signal. A decoded audio
// duration is authoritative; when it is unavailable the word count of the
// transcript stands in. The result never drops below one minute so that
// downstream tier selection has no degenerate zero bucket.
func EstimateDuration(audio time.Duration, transcript string) time.Duration {
	if audio > 0 {
		if audio < time.Minute {
			return time.Minute
		}
		return audio
	}
	return EstimateFromWords(transcript)
}

// EstimateFromWords converts a transcript's word count into whole minutes at
// 150 words per minute, flooring at one minute. Total over all inputs,
// including the empty transcript.
func EstimateFromWords(transcript string) time.Duration {
	words := len(strings.Fields(transcript))
	minutes := int(math.Round(float64(words) / WordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}
