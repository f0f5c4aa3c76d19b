package meeting

import "time"

// Tier controls the requested summary verbosity.
type Tier string

const (
	TierShort  Tier = "short"
	TierMedium Tier = "medium"
	TierLong   Tier = "long"
)

const (
	minChapters = 3
	maxChapters = 8
)

// Params are the categorical knobs of one analysis request. Derived once,
// never mutated afterwards.
type Params struct {
	Tier            Tier
	Mode            Mode
	ChapterCount    int // set only in chapter mode
	WordsPerChapter int // sizing hint for the prompt, not a hard boundary
}

// Select derives analysis parameters from either the duration estimate or the
// raw upload size, depending on strategy. Lower tier bounds are inclusive,
// upper bounds exclusive; the top tier is unbounded.
func Select(strategy Strategy, duration time.Duration, sizeBytes int64, words int, mode Mode) Params {
	p := Params{Mode: mode}

	switch strategy {
	case StrategySize:
		p.Tier = TierBySize(sizeBytes)
	default:
		p.Tier = TierByDuration(duration)
	}

	if mode == ModeChapters {
		p.ChapterCount = ChapterCount(duration)
		p.WordsPerChapter = words / p.ChapterCount
	}
	return p
}

// TierByDuration: under 10 minutes short, 10-30 medium, 30 and up long.
func TierByDuration(d time.Duration) Tier {
	switch {
	case d < 10*time.Minute:
		return TierShort
	case d < 30*time.Minute:
		return TierMedium
	default:
		return TierLong
	}
}

// TierBySize: under 1 MB short, 1-5 MB medium, 5 MB and up long.
func TierBySize(bytes int64) Tier {
	switch {
	case bytes < 1<<20:
		return TierShort
	case bytes < 5<<20:
		return TierMedium
	default:
		return TierLong
	}
}

// ChapterCount aims at one chapter per five minutes, clamped to [3, 8].
func ChapterCount(d time.Duration) int {
	n := int(d.Minutes()) / 5
	if n < minChapters {
		return minChapters
	}
	if n > maxChapters {
		return maxChapters
	}
	return n
}
