package wikidoc

import (
	"fmt"
	"regexp"

	"github.com/smasher164/xid"
)

// shortLineEndRegex finds the first sentence boundary or HTML-like tag in the
// raw (un-parsed) comment body: either a '.' followed by whitespace or end of
// string, or any <...> tag, whether or not cleanHTMLRegex lists it. This is deliberately
// the first match, not the last -- spec.md §4.5 calls out that a line with
// several sentences before the first one ends gets truncated at that first
// period, which can read as overly conservative for dense one-liners. That is
// kept as-is rather than "fixed", matching the spec's explicit instruction.
var shortLineEndRegex = regexp.MustCompile(`(?s)(\.)(?:\s|$)|(</?[^>]*>)`)

// cleanHTMLRegex strips the whitelisted layout tags spec.md §4.5's CleanHtml
// step names from the truncated prefix. Because the cut lands before the
// first tag, the prefix holds no complete tag, so this step leaves it
// unchanged in practice.
var cleanHTMLRegex = regexp.MustCompile(`</?(?:p|h\d|pre|dl|dt|dd|ol|ul|li|blockquote|div|hr|br)[^>]*/?>`)

// extractShort implements the Summary Extractor (spec.md §4.5): find the
// ShortLineEnd match in the raw (tag-split, not yet wiki-parsed) body, cut the
// prefix up to but excluding the match, run CleanHtml over that prefix, then
// re-parse it with the Wiki Parser. The short summary is the first block's
// Inline content -- but only if that first block is a Paragraph; anything
// else (a Title, a Code block, a list, ...) can't stand as a summary sentence,
// per spec.md §7's "Malformed summary" row.
func extractShort(docBody string, pos Position, reporter Reporter) Inline {
	m := shortLineEndRegex.FindStringSubmatchIndex(docBody)
	var prefix string
	switch {
	case m == nil:
		prefix = docBody
	case m[2] >= 0:
		// Matched the period alternative: cut before the period itself.
		prefix = docBody[:m[2]]
	default:
		// Matched the HTML-tag alternative: cut before the tag starts.
		prefix = docBody[:m[4]]
	}
	prefix = cleanHTMLRegex.ReplaceAllString(prefix, "")

	shortBody := parseWiki(prefix, pos, reporter)
	if len(shortBody) == 0 {
		return Text{Value: ""}
	}
	para, ok := shortBody[0].(Paragraph)
	if !ok {
		reporter.Warning(pos, "Comment must start with a sentence")
		return Text{Value: ""}
	}
	return para.Content
}

// parseTagBody runs the inline grammar (not the block grammar -- a tag's
// value is always a single inline run, never a sequence of blocks) over one
// tag's accumulated, lineSeparator-joined value.
func parseTagBody(raw string, pos Position, reporter Reporter) Inline {
	p := &parser{r: newReader(raw), pos: pos, reporter: reporter}
	return p.parseInline(func() bool { return p.r.atEnd() })
}

// oneTag projects a single-valued tag (spec.md §6.3: return, version, since,
// deprecated): the first occurrence wins per the append-then-take-first
// convention (spec.md §9), and a single warning is reported when the tag
// name occurs more than once.
func oneTag(tags *tagMultimap, name string, pos Position, reporter Reporter) *Inline {
	entries := tags.entries(name)
	tags.remove(name)
	if len(entries) == 0 {
		return nil
	}
	if len(entries) > 1 {
		reporter.Warning(pos, fmt.Sprintf("only one @%s tag is allowed, keeping the first", name))
	}
	content := parseTagBody(entries[0].value, pos, reporter)
	return &content
}

// allTags projects a multi-valued tag (spec.md §6.3: author, see, todo, note,
// example) into one Inline per occurrence, in encounter order.
func allTags(tags *tagMultimap, name string, pos Position, reporter Reporter) []Inline {
	entries := tags.entries(name)
	tags.remove(name)
	if len(entries) == 0 {
		return nil
	}
	out := make([]Inline, 0, len(entries))
	for _, e := range entries {
		out = append(out, parseTagBody(e.value, pos, reporter))
	}
	return out
}

// allSymsOneTag projects a symbol-scoped tag (param, tparam, throws) into a
// map keyed by symbol name, validating each symbol against the xid
// identifier grammar the way the teacher's sqlparser.Ident validates
// T-SQL identifiers (sqlparser/scanner.go's identifier-class handling). When
// the same symbol appears more than once, the first occurrence is kept and a
// warning is reported.
func allSymsOneTag(tags *tagMultimap, name string, pos Position, reporter Reporter) map[string]Inline {
	entries := tags.entries(name)
	tags.remove(name)
	if len(entries) == 0 {
		return nil
	}
	out := make(map[string]Inline, len(entries))
	for _, e := range entries {
		if _, dup := out[e.key.Symbol]; dup {
			reporter.Warning(pos, fmt.Sprintf("only one @%s tag for symbol %s is allowed, keeping the first", name, e.key.Symbol))
			continue
		}
		if !isValidSymbolName(e.key.Symbol) {
			reporter.Warning(pos, fmt.Sprintf("@%s %s: symbol name is not a valid identifier", name, e.key.Symbol))
		}
		out[e.key.Symbol] = parseTagBody(e.value, pos, reporter)
	}
	return out
}

func isValidSymbolName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !xid.Start(r) {
				return false
			}
			continue
		}
		if !xid.Continue(r) {
			return false
		}
	}
	return true
}
