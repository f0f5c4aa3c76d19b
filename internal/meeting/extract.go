package meeting

import (
	"regexp"
	"strings"
)

// DefaultTitle is returned when no title heading can be found in a report.
const DefaultTitle = "Untitled Meeting"

// titlePattern: one or more '#', optional whitespace, the literal phrase,
// an optional colon, then the remainder of the line.
var titlePattern = regexp.MustCompile(`(?m)^#+[ \t]*Suggested Title:?[ \t]*(.+)$`)

// ExtractTitle pulls the suggested title out of a markdown analysis report.
// A report without a matching heading is a normal outcome, not an error; the
// default title covers it. The matching rule lives only here so it can be
// swapped for a stricter structured-output contract without touching the
// rest of the pipeline.
func ExtractTitle(report string) string {
	m := titlePattern.FindStringSubmatch(report)
	if m == nil {
		return DefaultTitle
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return DefaultTitle
	}
	return title
}
