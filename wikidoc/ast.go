package wikidoc

import "strings"

// Block is a top-level structural node produced by the wiki parser. It is a
// closed sum type: the concrete variants below are the only implementations,
// and consumers are expected to switch exhaustively over them (see the
// teacher's own closed Type/Unparsed shapes in sqlparser/dom.go, generalized
// here to a full sealed hierarchy via an unexported marker method).
type Block interface {
	isBlock()
}

type Paragraph struct {
	Content Inline
}

type Title struct {
	Content Inline
	Level   int
}

type Code struct {
	Content string
}

type HorizontalRule struct{}

type UnorderedList struct {
	Items []Block
}

type OrderedList struct {
	Items []Block
}

func (Paragraph) isBlock()      {}
func (Title) isBlock()          {}
func (Code) isBlock()           {}
func (HorizontalRule) isBlock() {}
func (UnorderedList) isBlock()  {}
func (OrderedList) isBlock()    {}

// Body is an ordered sequence of Blocks: the content form of any parsed wiki
// string.
type Body []Block

// Inline is a content node living inside a Block. Like Block it is a closed
// sum type.
type Inline interface {
	isInline()
}

type Text struct {
	Value string
}

type Chain struct {
	Items []Inline
}

type Bold struct{ Content Inline }
type Italic struct{ Content Inline }
type Underline struct{ Content Inline }
type Superscript struct{ Content Inline }
type Subscript struct{ Content Inline }

type Monospace struct {
	Content string
}

type Link struct {
	Target string
	Title  *string
}

func (Text) isInline()        {}
func (Chain) isInline()       {}
func (Bold) isInline()        {}
func (Italic) isInline()      {}
func (Underline) isInline()   {}
func (Superscript) isInline() {}
func (Subscript) isInline()   {}
func (Monospace) isInline()   {}
func (Link) isInline()        {}

// unwrapChain collapses a Chain of length 0 or 1 per the invariant in
// spec.md §3: a bare singleton Chain is never part of the AST.
func unwrapChain(items []Inline) Inline {
	switch len(items) {
	case 0:
		return Text{""}
	case 1:
		return items[0]
	default:
		return Chain{mergeAdjacentText(items)}
	}
}

// mergeAdjacentText merges adjacent Text nodes at the same Chain level,
// separating their values with a single lineSeparator, per spec.md §3.
func mergeAdjacentText(items []Inline) []Inline {
	var out []Inline
	for _, item := range items {
		if t, ok := item.(Text); ok {
			if len(out) > 0 {
				if prev, ok := out[len(out)-1].(Text); ok {
					out[len(out)-1] = Text{prev.Value + string(lineSeparator) + t.Value}
					continue
				}
			}
			out = append(out, t)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Render renders an Inline tree to plain text, dropping all styling. It is
// the exported form of flattenText, for callers outside the package (the CLI's
// `parse` command) that just want a printable summary line.
func Render(in Inline) string {
	return flattenText(in)
}

// flattenText renders an Inline tree to plain text, dropping all styling,
// for short-summary prefix comparisons and tests.
func flattenText(in Inline) string {
	var b strings.Builder
	flattenInto(&b, in)
	return b.String()
}

func flattenInto(b *strings.Builder, in Inline) {
	switch v := in.(type) {
	case Text:
		b.WriteString(v.Value)
	case Chain:
		for _, item := range v.Items {
			flattenInto(b, item)
		}
	case Bold:
		flattenInto(b, v.Content)
	case Italic:
		flattenInto(b, v.Content)
	case Underline:
		flattenInto(b, v.Content)
	case Superscript:
		flattenInto(b, v.Content)
	case Subscript:
		flattenInto(b, v.Content)
	case Monospace:
		b.WriteString(v.Content)
	case Link:
		if v.Title != nil {
			b.WriteString(*v.Title)
		} else {
			b.WriteString(v.Target)
		}
	}
}
