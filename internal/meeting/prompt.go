package meeting

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system turn sent alongside every analysis
// prompt.
const SystemInstruction = "You are a meeting analyst. You produce well-structured markdown reports " +
	"from meeting transcripts. Follow the requested section order exactly and do not add sections " +
	"that were not asked for."

var tierWording = map[Tier]string{
	TierShort:  "a brief summary of 2-3 sentences",
	TierMedium: "a summary of 1-2 paragraphs",
	TierLong:   "a detailed summary of 3-4 paragraphs",
}

// BuildPrompt renders the analysis instruction for one transcript. The
// transcript is embedded verbatim, and the rendered text always directs the
// engine to emit a "Suggested Title" heading so the title extractor has a
// token to find.
func BuildPrompt(t Transcript, p Params) string {
	var b strings.Builder

	b.WriteString("Analyze the meeting transcript below and produce a markdown report with these sections, in this order:\n\n")
	fmt.Fprintf(&b, "1. \"## Summary\" — %s.\n", tierWording[p.Tier])
	b.WriteString("2. \"## Sentiment\" — percentages for positive, negative and neutral; the three values must sum to 100.\n")
	b.WriteString("3. \"## Topics\" — 3-5 short topic labels as a bullet list.\n")
	b.WriteString("4. A line of the exact form \"## Suggested Title: <title>\" with a concise meeting title on that same line.\n")

	if p.Mode == ModeChapters {
		fmt.Fprintf(&b, "5. A chapter breakdown: split the meeting into exactly %d chapters. ", p.ChapterCount)
		b.WriteString("Start each chapter with a heading of the form \"## [MM:SS] <chapter title>\" where the timestamp approximates the chapter's position in the meeting, followed by a short chapter summary with its key points and action items. ")
		if p.WordsPerChapter > 0 {
			fmt.Fprintf(&b, "Each chapter covers roughly %d words of the transcript. ", p.WordsPerChapter)
		}
		b.WriteString("Timestamps are approximations, not exact alignments.\n")
	} else {
		b.WriteString("5. \"## Key Points\" — the most important points as a bullet list.\n")
		b.WriteString("6. \"## Action Items\" — concrete tasks with owners where identifiable.\n")
		b.WriteString("7. \"## Next Steps\" — what happens after this meeting.\n")
	}

	b.WriteString("\nTranscript:\n\n")
	b.WriteString(t.Formatted)
	b.WriteString("\n")
	return b.String()
}
