package wikidoc

import (
	"regexp"
	"strings"
)

var (
	codeFenceOpenRegex  = regexp.MustCompile(`^(.*?)\{\{\{(.*)$`)
	codeFenceCloseRegex = regexp.MustCompile(`^(.*?)\}\}\}(.*)$`)
	symbolTagRegex      = regexp.MustCompile(`^\s*@(param|tparam|throws)\s+(\S*)\s*(.*)$`)
	simpleTagRegex      = regexp.MustCompile(`^\s*@(\S+)\s+(.*)$`)
)

// splitResult is the Tag Splitter's output: the main body string plus a
// multimap of tag-scoped line groups, preserved in encountered order.
type splitResult struct {
	body string
	tags *tagMultimap
}

// tagOccurrence is one "@tag ..." header line plus whatever continuation
// lines followed it, before the next tag header line. Fence lines that
// follow a tag header are continuation lines of that occurrence.
type tagOccurrence struct {
	key    TagKey
	values []string
}

// tagMultimap preserves every tag occurrence in encounter order. It does not
// deduplicate by key: spec.md §9's "append-then-take-first" convention means
// the splitter itself stays agnostic about which tag names are single- vs
// multi-valued, recording every occurrence and leaving that decision to the
// Tag Projector (oneTag keeps the first and warns about the rest; allTags
// keeps them all). Because of that, the same key can legitimately appear
// more than once here -- unlike the teacher's single-pragma accumulation in
// sqlparser/dom.go's parsePragmas, which only ever tracks one pragma name and
// so can get away with a plain slice.
type tagMultimap struct {
	occurrences []tagOccurrence
}

func newTagMultimap() *tagMultimap {
	return &tagMultimap{}
}

// appendLine starts a new occurrence for key and returns its index, to be
// passed to appendContinuation for any following continuation lines.
func (m *tagMultimap) appendLine(key TagKey, line string) int {
	m.occurrences = append(m.occurrences, tagOccurrence{key: key, values: []string{line}})
	return len(m.occurrences) - 1
}

// appendContinuation appends a continuation line onto the occurrence at idx,
// joined by lineSeparator. idx must be the index returned by the most recent
// appendLine call; -1 (no tag seen yet) or any other out-of-range index is an
// internal logic error -- the splitter should never call this except right
// after confirming a current occurrence exists.
func (m *tagMultimap) appendContinuation(idx int, line string) {
	if idx < 0 || idx >= len(m.occurrences) {
		panic("oops: continuation line under a tag with no accumulated entry")
	}
	last := len(m.occurrences[idx].values) - 1
	m.occurrences[idx].values[last] = m.occurrences[idx].values[last] + string(lineSeparator) + line
}

// entries returns every occurrence of the given tag name, in encounter
// order, each with its continuation lines joined into one value.
func (m *tagMultimap) entries(name string) []tagEntry {
	var out []tagEntry
	for _, occ := range m.occurrences {
		if occ.key.Name == name {
			out = append(out, tagEntry{key: occ.key, value: strings.Join(occ.values, string(lineSeparator))})
		}
	}
	return out
}

// remove deletes all occurrences for the given name; used by the projector
// to track which tags remain unrecognized after every known tag has been
// projected.
func (m *tagMultimap) remove(name string) {
	var kept []tagOccurrence
	for _, occ := range m.occurrences {
		if occ.key.Name != name {
			kept = append(kept, occ)
		}
	}
	m.occurrences = kept
}

func (m *tagMultimap) remainingNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, occ := range m.occurrences {
		if !seen[occ.key.Name] {
			seen[occ.key.Name] = true
			names = append(names, occ.key.Name)
		}
	}
	return names
}

type tagEntry struct {
	key   TagKey
	value string
}

// splitTags implements the Tag Splitter (spec.md §4.3): walk cleaned lines,
// tracking code-block fences, and partition into a body string plus a tag
// multimap.
func splitTags(lines []string) splitResult {
	var docBody strings.Builder
	tags := newTagMultimap()
	lastIdx := -1
	inCodeBlock := false

	appendBody := func(line string) {
		if docBody.Len() == 0 {
			docBody.WriteString(line)
		} else {
			docBody.WriteByte(byte(lineSeparator))
			docBody.WriteString(line)
		}
	}

	// commitLine is rule 5/6: a line that is neither a fence token nor a new
	// tag header either continues the last-seen tag occurrence or joins the
	// body.
	commitLine := func(line string) {
		if lastIdx >= 0 {
			tags.appendContinuation(lastIdx, line)
			return
		}
		appendBody(line)
	}

	// process handles one logical line; code-fence lines may synthesize a
	// second logical line, so this is a function we can call recursively.
	// The fence token itself is always committed like any other body line --
	// it has to survive into the body string for the wiki parser's own
	// {{{ / }}} recognition to ever see it; inCodeBlock only gates whether
	// rules 3/4 (tag recognition) apply to the surrounding lines.
	var process func(line string)
	process = func(line string) {
		if !inCodeBlock {
			if m := codeFenceOpenRegex.FindStringSubmatch(line); m != nil {
				pre, post := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
				if pre != "" {
					process(pre)
				}
				inCodeBlock = true
				commitLine("{{{")
				if post != "" {
					process(post)
				}
				return
			}
		}

		if m := codeFenceCloseRegex.FindStringSubmatch(line); m != nil {
			pre, post := strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			if pre != "" {
				process(pre)
			}
			inCodeBlock = false
			commitLine("}}}")
			if post != "" {
				process(post)
			}
			return
		}

		if !inCodeBlock {
			if m := symbolTagRegex.FindStringSubmatch(line); m != nil {
				key := SymbolTagKey(m[1], m[2])
				lastIdx = tags.appendLine(key, m[3])
				return
			}
			if m := simpleTagRegex.FindStringSubmatch(line); m != nil {
				key := SimpleTagKey(m[1])
				lastIdx = tags.appendLine(key, m[2])
				return
			}
		}

		commitLine(line)
	}

	for _, line := range lines {
		process(line)
	}

	return splitResult{body: docBody.String(), tags: tags}
}
