package tokenizer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
	"github.com/yaklabco/razorlex/pkg/tokenizer"
)

func TestHTMLTokenizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:     "empty",
			input:    "",
			expected: []tok{},
		},
		{
			name:     "embedded transition is text",
			input:    "foo@bar",
			expected: []tok{{"Text", "foo@bar"}},
		},
		{
			name:  "transition after space",
			input: "foo @bar",
			expected: []tok{
				{"Text", "foo"}, {"WhiteSpace", " "}, {"Transition", "@"}, {"Text", "bar"},
			},
		},
		{
			name:     "escaped transition",
			input:    "@@",
			expected: []tok{{"Transition", "@"}, {"Transition", "@"}},
		},
		{
			name:  "tag with attribute",
			input: "<div class='x'>",
			expected: []tok{
				{"OpenAngle", "<"}, {"Text", "div"}, {"WhiteSpace", " "}, {"Text", "class"},
				{"Equals", "="}, {"SingleQuote", "'"}, {"Text", "x"}, {"SingleQuote", "'"},
				{"CloseAngle", ">"},
			},
		},
		{
			name:  "markup comment",
			input: "<!-- c -->",
			expected: []tok{
				{"OpenAngle", "<"}, {"Bang", "!"}, {"DoubleHyphen", "--"}, {"WhiteSpace", " "},
				{"Text", "c"}, {"WhiteSpace", " "}, {"DoubleHyphen", "--"}, {"CloseAngle", ">"},
			},
		},
		{
			name:  "closing tag and cdata brackets",
			input: "</p><![x]?>",
			expected: []tok{
				{"OpenAngle", "<"}, {"ForwardSlash", "/"}, {"Text", "p"}, {"CloseAngle", ">"},
				{"OpenAngle", "<"}, {"Bang", "!"}, {"LeftBracket", "["}, {"Text", "x"},
				{"RightBracket", "]"}, {"QuestionMark", "?"}, {"CloseAngle", ">"},
			},
		},
		{
			name:     "single hyphen is text",
			input:    "a-b",
			expected: []tok{{"Text", "a-b"}},
		},
		{
			name:     "double quote",
			input:    `"x"`,
			expected: []tok{{"DoubleQuote", `"`}, {"Text", "x"}, {"DoubleQuote", `"`}},
		},
		{
			name:  "comment",
			input: "@* a *@",
			expected: []tok{
				{"RazorCommentTransition", "@"}, {"RazorCommentStar", "*"}, {"RazorComment", " a "},
				{"RazorCommentStar", "*"}, {"RazorCommentTransition", "@"},
			},
		},
		{
			name:  "unterminated comment",
			input: "@* a *",
			expected: []tok{
				{"RazorCommentTransition", "@"}, {"RazorCommentStar", "*"}, {"RazorComment", " a *"},
			},
		},
		{
			name:  "empty comment",
			input: "@**@",
			expected: []tok{
				{"RazorCommentTransition", "@"}, {"RazorCommentStar", "*"},
				{"RazorCommentStar", "*"}, {"RazorCommentTransition", "@"},
			},
		},
		{
			name:  "comment with stars inside",
			input: "@* a * b *@x",
			expected: []tok{
				{"RazorCommentTransition", "@"}, {"RazorCommentStar", "*"}, {"RazorComment", " a * b "},
				{"RazorCommentStar", "*"}, {"RazorCommentTransition", "@"}, {"Text", "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.expected, toks(htmlSymbols(tt.input))); diff != "" {
				t.Errorf("symbols mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHTMLTokenizer_NewLines(t *testing.T) {
	t.Parallel()

	symbols := htmlSymbols("\n\r\r\n")
	require.Len(t, symbols, 3)

	for i, content := range []string{"\n", "\r", "\r\n"} {
		assert.Equal(t, symbol.HTMLNewLine, symbols[i].Type())
		assert.Equal(t, content, symbols[i].Content())
		assert.Equal(t, i, symbols[i].Start().Absolute)
		assert.Equal(t, i, symbols[i].Start().Line)
	}
}

func TestHTMLTokenizer_Locations(t *testing.T) {
	t.Parallel()

	symbols := htmlSymbols("<p>\r\n  @x")
	expected := []source.Location{
		source.NewLocation(0, 0, 0),
		source.NewLocation(1, 0, 1),
		source.NewLocation(2, 0, 2),
		source.NewLocation(3, 0, 3),
		source.NewLocation(5, 1, 0),
		source.NewLocation(7, 1, 2),
		source.NewLocation(8, 1, 3),
	}
	require.Len(t, symbols, len(expected))
	for i, sym := range symbols {
		assert.Equal(t, expected[i], sym.Start(), "symbol %d %s", i, sym)
	}
}

func TestHTMLTokenizer_StreamingSource(t *testing.T) {
	t.Parallel()

	input := "foo@bar <a href=\"x\">@* c *@</a>"
	streamed := tokenizer.Tokenize[symbol.HTMLType](
		tokenizer.NewHTML(text.NewBufferingReader(text.NewStringReader(input))))
	seekable := htmlSymbols(input)

	require.Len(t, streamed, len(seekable))
	for i := range seekable {
		assert.True(t, seekable[i].Equal(streamed[i]), "%s != %s", seekable[i], streamed[i])
	}
}
