package wikidoc

// Comment is the fully parsed form of one documentation comment: the parsed
// body, its extracted short summary, and every recognized tag projected into
// its typed slot (spec.md §3, §6).
type Comment struct {
	Body  Body
	Short Inline

	Authors []Inline
	See     []Inline
	Todo    []Inline
	Note    []Inline
	Example []Inline

	Result     *Inline
	Version    *Inline
	Since      *Inline
	Deprecated *Inline

	Throws      map[string]Inline
	ValueParams map[string]Inline
	TypeParams  map[string]Inline

	// UnrecognizedTags lists any @tag name left in the splitter's multimap
	// once every known projection has run (spec.md §6.3's "left over" case).
	UnrecognizedTags []string
}

// Parse runs the full two-pass pipeline described in spec.md §2 over one raw
// documentation comment: Line Cleaner, then Tag Splitter, then the Wiki
// Parser over the body and over each tag's value, then the Summary Extractor
// and Tag Projector.
func Parse(raw string, pos Position, reporter Reporter) Comment {
	if reporter == nil {
		reporter = NopReporter{}
	}

	lines := cleanLines(raw, pos, reporter)
	split := splitTags(lines)

	body := parseWiki(split.body, pos, reporter)

	c := Comment{
		Body:        body,
		Short:       extractShort(split.body, pos, reporter),
		Authors:     allTags(split.tags, "author", pos, reporter),
		See:         allTags(split.tags, "see", pos, reporter),
		Todo:        allTags(split.tags, "todo", pos, reporter),
		Note:        allTags(split.tags, "note", pos, reporter),
		Example:     allTags(split.tags, "example", pos, reporter),
		Result:      oneTag(split.tags, "return", pos, reporter),
		Version:     oneTag(split.tags, "version", pos, reporter),
		Since:       oneTag(split.tags, "since", pos, reporter),
		Deprecated:  oneTag(split.tags, "deprecated", pos, reporter),
		Throws:      allSymsOneTag(split.tags, "throws", pos, reporter),
		ValueParams: allSymsOneTag(split.tags, "param", pos, reporter),
		TypeParams:  allSymsOneTag(split.tags, "tparam", pos, reporter),
	}

	c.UnrecognizedTags = split.tags.remainingNames()
	for _, name := range c.UnrecognizedTags {
		reporter.Warning(pos, "unrecognized tag: @"+name)
	}

	return c
}
