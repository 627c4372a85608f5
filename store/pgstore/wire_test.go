package pgstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/docwiki/wikidoc"
)

func TestEncodeDecodeCommentRoundTrips(t *testing.T) {
	title := "see also"
	result := wikidoc.Inline(wikidoc.Text{Value: "the computed value"})

	c := wikidoc.Comment{
		Body: wikidoc.Body{
			wikidoc.Title{Content: wikidoc.Text{Value: "Overview"}, Level: 1},
			wikidoc.Paragraph{Content: wikidoc.Chain{Items: []wikidoc.Inline{
				wikidoc.Text{Value: "a "},
				wikidoc.Bold{Content: wikidoc.Text{Value: "bold"}},
				wikidoc.Text{Value: " word"},
			}}},
			wikidoc.Code{Content: "x := 1\n"},
			wikidoc.HorizontalRule{},
			wikidoc.UnorderedList{Items: []wikidoc.Block{
				wikidoc.Paragraph{Content: wikidoc.Text{Value: "item one"}},
			}},
		},
		Short:   wikidoc.Text{Value: "Overview"},
		Authors: []wikidoc.Inline{wikidoc.Text{Value: "Ada Lovelace"}},
		Result:  &result,
		Throws: map[string]wikidoc.Inline{
			"ErrNotFound": wikidoc.Monospace{Content: "ErrNotFound"},
		},
		ValueParams: map[string]wikidoc.Inline{
			"name": wikidoc.Link{Target: "glossary#name", Title: &title},
		},
		UnrecognizedTags: []string{"bogus"},
	}

	w := encodeComment(c)
	payload, err := json.Marshal(w)
	require.NoError(t, err)

	var w2 wireComment
	require.NoError(t, json.Unmarshal(payload, &w2))

	got := decodeComment(w2)
	assert.Equal(t, c, got)
}

func TestEncodeDecodeInlineVariants(t *testing.T) {
	title := "t"
	cases := []wikidoc.Inline{
		wikidoc.Text{Value: "plain"},
		wikidoc.Italic{Content: wikidoc.Text{Value: "i"}},
		wikidoc.Underline{Content: wikidoc.Text{Value: "u"}},
		wikidoc.Superscript{Content: wikidoc.Text{Value: "s"}},
		wikidoc.Subscript{Content: wikidoc.Text{Value: "s"}},
		wikidoc.Monospace{Content: "code"},
		wikidoc.Link{Target: "x", Title: &title},
		wikidoc.Link{Target: "x"},
	}
	for _, in := range cases {
		got := decodeInline(encodeInline(in))
		assert.Equal(t, in, got)
	}
}
