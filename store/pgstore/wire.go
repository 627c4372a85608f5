package pgstore

import (
	"fmt"

	"github.com/vippsas/docwiki/wikidoc"
)

// wireComment is the JSON-serializable shadow of wikidoc.Comment. Block and
// Inline are closed sum-type interfaces (wikidoc/ast.go), so they need an
// explicit tagged-union encoding rather than a direct json.Marshal, the same
// way the teacher hand-rolls SerializeBytes for its own sqlparser.Document
// tree (sqlparser/dom.go) instead of trusting a generic encoder with it.
type wireComment struct {
	Body    []wireBlock `json:"body"`
	Short   wireInline  `json:"short"`
	Authors []wireInline `json:"authors,omitempty"`
	See     []wireInline `json:"see,omitempty"`
	Todo    []wireInline `json:"todo,omitempty"`
	Note    []wireInline `json:"note,omitempty"`
	Example []wireInline `json:"example,omitempty"`

	Result     *wireInline `json:"result,omitempty"`
	Version    *wireInline `json:"version,omitempty"`
	Since      *wireInline `json:"since,omitempty"`
	Deprecated *wireInline `json:"deprecated,omitempty"`

	Throws      map[string]wireInline `json:"throws,omitempty"`
	ValueParams map[string]wireInline `json:"valueParams,omitempty"`
	TypeParams  map[string]wireInline `json:"typeParams,omitempty"`

	UnrecognizedTags []string `json:"unrecognizedTags,omitempty"`
}

type wireBlock struct {
	Kind    string      `json:"kind"`
	Content *wireInline `json:"content,omitempty"`
	Level   int         `json:"level,omitempty"`
	Text    string      `json:"text,omitempty"`
	Items   []wireBlock `json:"items,omitempty"`
}

type wireInline struct {
	Kind    string       `json:"kind"`
	Value   string       `json:"value,omitempty"`
	Content *wireInline  `json:"content,omitempty"`
	Items   []wireInline `json:"items,omitempty"`
	Target  string       `json:"target,omitempty"`
	Title   *string      `json:"title,omitempty"`
}

func encodeComment(c wikidoc.Comment) wireComment {
	w := wireComment{
		Body:             encodeBlocks(c.Body),
		Short:            encodeInline(c.Short),
		Authors:          encodeInlines(c.Authors),
		See:              encodeInlines(c.See),
		Todo:             encodeInlines(c.Todo),
		Note:             encodeInlines(c.Note),
		Example:          encodeInlines(c.Example),
		Result:           encodeInlinePtr(c.Result),
		Version:          encodeInlinePtr(c.Version),
		Since:            encodeInlinePtr(c.Since),
		Deprecated:       encodeInlinePtr(c.Deprecated),
		Throws:           encodeInlineMap(c.Throws),
		ValueParams:      encodeInlineMap(c.ValueParams),
		TypeParams:       encodeInlineMap(c.TypeParams),
		UnrecognizedTags: c.UnrecognizedTags,
	}
	return w
}

func decodeComment(w wireComment) wikidoc.Comment {
	return wikidoc.Comment{
		Body:              decodeBlocks(w.Body),
		Short:             decodeInline(w.Short),
		Authors:           decodeInlines(w.Authors),
		See:               decodeInlines(w.See),
		Todo:              decodeInlines(w.Todo),
		Note:              decodeInlines(w.Note),
		Example:           decodeInlines(w.Example),
		Result:            decodeInlinePtr(w.Result),
		Version:           decodeInlinePtr(w.Version),
		Since:             decodeInlinePtr(w.Since),
		Deprecated:        decodeInlinePtr(w.Deprecated),
		Throws:            decodeInlineMap(w.Throws),
		ValueParams:       decodeInlineMap(w.ValueParams),
		TypeParams:        decodeInlineMap(w.TypeParams),
		UnrecognizedTags:  w.UnrecognizedTags,
	}
}

func encodeBlocks(bs []wikidoc.Block) []wireBlock {
	if bs == nil {
		return nil
	}
	out := make([]wireBlock, len(bs))
	for i, b := range bs {
		out[i] = encodeBlock(b)
	}
	return out
}

func decodeBlocks(ws []wireBlock) wikidoc.Body {
	if ws == nil {
		return nil
	}
	out := make([]wikidoc.Block, len(ws))
	for i, w := range ws {
		out[i] = decodeBlock(w)
	}
	return out
}

func encodeBlock(b wikidoc.Block) wireBlock {
	switch v := b.(type) {
	case wikidoc.Paragraph:
		c := encodeInline(v.Content)
		return wireBlock{Kind: "paragraph", Content: &c}
	case wikidoc.Title:
		c := encodeInline(v.Content)
		return wireBlock{Kind: "title", Content: &c, Level: v.Level}
	case wikidoc.Code:
		return wireBlock{Kind: "code", Text: v.Content}
	case wikidoc.HorizontalRule:
		return wireBlock{Kind: "hrule"}
	case wikidoc.UnorderedList:
		return wireBlock{Kind: "ulist", Items: encodeBlocks(v.Items)}
	case wikidoc.OrderedList:
		return wireBlock{Kind: "olist", Items: encodeBlocks(v.Items)}
	default:
		panic(fmt.Sprintf("oops: unrecognized Block variant %T", b))
	}
}

func decodeBlock(w wireBlock) wikidoc.Block {
	switch w.Kind {
	case "paragraph":
		return wikidoc.Paragraph{Content: decodeInlinePtrOrEmpty(w.Content)}
	case "title":
		return wikidoc.Title{Content: decodeInlinePtrOrEmpty(w.Content), Level: w.Level}
	case "code":
		return wikidoc.Code{Content: w.Text}
	case "hrule":
		return wikidoc.HorizontalRule{}
	case "ulist":
		return wikidoc.UnorderedList{Items: decodeBlocks(w.Items)}
	case "olist":
		return wikidoc.OrderedList{Items: decodeBlocks(w.Items)}
	default:
		panic(fmt.Sprintf("oops: unrecognized wire block kind %q", w.Kind))
	}
}

func encodeInlines(items []wikidoc.Inline) []wireInline {
	if items == nil {
		return nil
	}
	out := make([]wireInline, len(items))
	for i, it := range items {
		out[i] = encodeInline(it)
	}
	return out
}

func decodeInlines(items []wireInline) []wikidoc.Inline {
	if items == nil {
		return nil
	}
	out := make([]wikidoc.Inline, len(items))
	for i, it := range items {
		out[i] = decodeInline(it)
	}
	return out
}

func encodeInlinePtr(in *wikidoc.Inline) *wireInline {
	if in == nil {
		return nil
	}
	w := encodeInline(*in)
	return &w
}

func decodeInlinePtr(w *wireInline) *wikidoc.Inline {
	if w == nil {
		return nil
	}
	in := decodeInline(*w)
	return &in
}

func decodeInlinePtrOrEmpty(w *wireInline) wikidoc.Inline {
	if w == nil {
		return wikidoc.Text{}
	}
	return decodeInline(*w)
}

func encodeInlineMap(m map[string]wikidoc.Inline) map[string]wireInline {
	if m == nil {
		return nil
	}
	out := make(map[string]wireInline, len(m))
	for k, v := range m {
		out[k] = encodeInline(v)
	}
	return out
}

func decodeInlineMap(m map[string]wireInline) map[string]wikidoc.Inline {
	if m == nil {
		return nil
	}
	out := make(map[string]wikidoc.Inline, len(m))
	for k, v := range m {
		out[k] = decodeInline(v)
	}
	return out
}

func encodeInline(in wikidoc.Inline) wireInline {
	switch v := in.(type) {
	case wikidoc.Text:
		return wireInline{Kind: "text", Value: v.Value}
	case wikidoc.Chain:
		return wireInline{Kind: "chain", Items: encodeInlines(v.Items)}
	case wikidoc.Bold:
		c := encodeInline(v.Content)
		return wireInline{Kind: "bold", Content: &c}
	case wikidoc.Italic:
		c := encodeInline(v.Content)
		return wireInline{Kind: "italic", Content: &c}
	case wikidoc.Underline:
		c := encodeInline(v.Content)
		return wireInline{Kind: "underline", Content: &c}
	case wikidoc.Superscript:
		c := encodeInline(v.Content)
		return wireInline{Kind: "superscript", Content: &c}
	case wikidoc.Subscript:
		c := encodeInline(v.Content)
		return wireInline{Kind: "subscript", Content: &c}
	case wikidoc.Monospace:
		return wireInline{Kind: "monospace", Value: v.Content}
	case wikidoc.Link:
		return wireInline{Kind: "link", Target: v.Target, Title: v.Title}
	default:
		panic(fmt.Sprintf("oops: unrecognized Inline variant %T", in))
	}
}

func decodeInline(w wireInline) wikidoc.Inline {
	switch w.Kind {
	case "text":
		return wikidoc.Text{Value: w.Value}
	case "chain":
		return wikidoc.Chain{Items: decodeInlines(w.Items)}
	case "bold":
		return wikidoc.Bold{Content: decodeInlinePtrOrEmpty(w.Content)}
	case "italic":
		return wikidoc.Italic{Content: decodeInlinePtrOrEmpty(w.Content)}
	case "underline":
		return wikidoc.Underline{Content: decodeInlinePtrOrEmpty(w.Content)}
	case "superscript":
		return wikidoc.Superscript{Content: decodeInlinePtrOrEmpty(w.Content)}
	case "subscript":
		return wikidoc.Subscript{Content: decodeInlinePtrOrEmpty(w.Content)}
	case "monospace":
		return wikidoc.Monospace{Content: w.Value}
	case "link":
		return wikidoc.Link{Target: w.Target, Title: w.Title}
	default:
		panic(fmt.Sprintf("oops: unrecognized wire inline kind %q", w.Kind))
	}
}
