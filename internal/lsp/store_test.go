package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/razorlex/pkg/segment"
)

func rangeAt(line, start, end protocol.UInteger) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{Line: line, Character: start},
		End:   protocol.Position{Line: line, Character: end},
	}
}

func TestStore_OpenAndApply(t *testing.T) {
	t.Parallel()

	store := NewStore()
	uri := "file:///tmp/page.cshtml"

	update := store.Open(uri, segment.HTML(), 1, "<p>Hello @name!</p>\n")
	assert.Equal(t, "html", update.Language)
	assert.Empty(t, update.Diagnostics)
	assert.NotNil(t, update.Diagnostics)
	assert.Equal(t, 1, store.Len())

	update, err := store.Apply(uri, 2, []any{
		protocol.TextDocumentContentChangeEvent{Range: rangeAt(0, 5, 5), Text: "X"},
	})
	require.NoError(t, err)
	assert.Equal(t, protocol.Integer(2), update.Version)
	require.Len(t, update.Results, 1)
	assert.False(t, update.Results[0].Reparsed)
	assert.Equal(t, "<p>HeXllo ", update.Results[0].Owner.Content(), "owner is rebuilt in place")

	content, ok := store.Content(uri)
	require.True(t, ok)
	assert.Equal(t, "<p>HeXllo @name!</p>\n", content)
}

func TestStore_ApplyMultipleChanges(t *testing.T) {
	t.Parallel()

	store := NewStore()
	uri := "file:///tmp/app.js"
	store.Open(uri, segment.JavaScript(false), 1, "let s = 'open\nx;\n")

	update, err := store.Apply(uri, 2, []any{
		// Each range refers to the text produced by the previous change.
		protocol.TextDocumentContentChangeEvent{Range: rangeAt(0, 13, 13), Text: "'"},
		protocol.TextDocumentContentChangeEvent{Range: rangeAt(1, 0, 1), Text: "y"},
	})
	require.NoError(t, err)
	require.Len(t, update.Results, 2)
	assert.Empty(t, update.Diagnostics)

	content, _ := store.Content(uri)
	assert.Equal(t, "let s = 'open'\ny;\n", content)

	want := segment.Parse(segment.JavaScript(false), content)
	assert.Equal(t, Diagnostics(want), update.Diagnostics)
}

func TestStore_FullTextChange(t *testing.T) {
	t.Parallel()

	store := NewStore()
	uri := "file:///tmp/app.js"
	store.Open(uri, segment.JavaScript(false), 1, "x;")

	update, err := store.Apply(uri, 3, []any{
		protocol.TextDocumentContentChangeEventWhole{Text: "let s = 'open"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, update.Replaced)
	assert.Empty(t, update.Results)
	require.Len(t, update.Diagnostics, 1)
	assert.Equal(t, "Unterminated string literal", update.Diagnostics[0].Message)

	update, err = store.Apply(uri, 4, []any{
		protocol.TextDocumentContentChangeEvent{Text: "y;"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, update.Replaced)
	assert.Empty(t, update.Diagnostics)
}

func TestStore_UnknownDocument(t *testing.T) {
	t.Parallel()

	store := NewStore()
	_, err := store.Apply("file:///missing.js", 1, nil)
	require.ErrorIs(t, err, ErrUnknownDocument)

	assert.False(t, store.Close("file:///missing.js"))
	_, ok := store.Content("file:///missing.js")
	assert.False(t, ok)
}

func TestStore_Close(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Open("file:///a.html", segment.HTML(), 1, "<p>")
	assert.True(t, store.Close("file:///a.html"))
	assert.Zero(t, store.Len())
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	doc := segment.Parse(segment.JavaScript(false), "x = 1;\nlet s = 'open\n")
	diagnostics := Diagnostics(doc)
	require.Len(t, diagnostics, 1)

	diagnostic := diagnostics[0]
	assert.Equal(t, protocol.Position{Line: 1, Character: 8}, diagnostic.Range.Start)
	assert.Equal(t, protocol.Position{Line: 1, Character: 9}, diagnostic.Range.End)
	require.NotNil(t, diagnostic.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diagnostic.Severity)
	require.NotNil(t, diagnostic.Source)
	assert.Equal(t, "razorlex", *diagnostic.Source)
	assert.Equal(t, "Unterminated string literal", diagnostic.Message)
}
