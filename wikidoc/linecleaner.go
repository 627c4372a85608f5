package wikidoc

import (
	"regexp"
	"strings"
)

// cleanCommentLineRegex matches a leading '*' optionally followed by one
// whitespace character, capturing the remainder of the line. This is one of
// the small line-level regexes the design notes call out as safe to
// translate directly (spec.md §9), the same way the teacher uses regexp for
// its own line-level recognition (sqlparser/scanner.go's numberRegexp).
var cleanCommentLineRegex = regexp.MustCompile(`^\*\s?(.*)$`)

// cleanLines implements the Line Cleaner (spec.md §4.2): strip the outer
// /** ... */ delimiters, split into lines, and strip each line's leading
// '* ' marker. pos is forwarded to reporter for lines missing the marker.
// Text on the opening line, right after /**, counts as marked by the opener's
// second '*'.
func cleanLines(raw string, pos Position, reporter Reporter) []string {
	trimmed := strings.TrimSpace(raw)
	openedWithMarker := strings.HasPrefix(trimmed, "/**")
	trimmed = strings.TrimPrefix(trimmed, "/**")
	trimmed = strings.TrimPrefix(trimmed, "/*")
	trimmed = strings.TrimSuffix(trimmed, "*/")

	rawLines := splitLines(trimmed)
	var out []string
	for i, line := range rawLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := cleanCommentLineRegex.FindStringSubmatch(line); m != nil {
			out = append(out, m[1])
			continue
		}
		if i == 0 && openedWithMarker {
			out = append(out, line)
			continue
		}
		reporter.Warning(pos, "Comment has no start-of-line marker ('*')")
		out = append(out, line)
	}
	return out
}

// splitLines splits on any of the common line terminators.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
