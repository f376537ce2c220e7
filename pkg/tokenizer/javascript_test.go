package tokenizer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/tokenizer"
)

func TestJSTokenizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []tok
	}{
		{
			name:     "integer followed by identifier",
			input:    "42a",
			expected: []tok{{"IntegerLiteral", "42"}, {"Identifier", "a"}},
		},
		{
			name:     "dot not absorbed into integer",
			input:    "3.a",
			expected: []tok{{"IntegerLiteral", "3"}, {"Dot", "."}, {"Identifier", "a"}},
		},
		{
			name:     "real with exponent",
			input:    "3.14e-2",
			expected: []tok{{"RealLiteral", "3.14e-2"}},
		},
		{
			name:     "leading dot real",
			input:    ".5",
			expected: []tok{{"RealLiteral", ".5"}},
		},
		{
			name:     "exponent without fraction",
			input:    "1E5",
			expected: []tok{{"RealLiteral", "1E5"}},
		},
		{
			name:     "hex stops at first non-hex digit",
			input:    "0x1Fg",
			expected: []tok{{"HexLiteral", "0x1F"}, {"Identifier", "g"}},
		},
		{
			name:     "binary",
			input:    "0b102",
			expected: []tok{{"BinaryLiteral", "0b10"}, {"IntegerLiteral", "2"}},
		},
		{
			name:     "octal",
			input:    "0o78",
			expected: []tok{{"OctalLiteral", "0o7"}, {"IntegerLiteral", "8"}},
		},
		{
			name:  "keywords and identifiers",
			input: "var $el = function _x",
			expected: []tok{
				{"Keyword", "var"}, {"WhiteSpace", " "}, {"Identifier", "$el"}, {"WhiteSpace", " "},
				{"Assignment", "="}, {"WhiteSpace", " "}, {"Keyword", "function"}, {"WhiteSpace", " "},
				{"Identifier", "_x"},
			},
		},
		{
			name:     "escaped quote",
			input:    `'a\'b'`,
			expected: []tok{{"StringLiteral", `'a\'b'`}},
		},
		{
			name:     "escaped backslash",
			input:    `"a\\" x`,
			expected: []tok{{"StringLiteral", `"a\\"`}, {"WhiteSpace", " "}, {"Identifier", "x"}},
		},
		{
			name:  "backslash before line break ends string",
			input: "'foo\\\nbar",
			expected: []tok{
				{"StringLiteral", "'foo\\"}, {"NewLine", "\n"}, {"Identifier", "bar"},
			},
		},
		{
			name:     "line comment",
			input:    "// hi\r\nx",
			expected: []tok{{"Comment", "// hi"}, {"NewLine", "\r\n"}, {"Identifier", "x"}},
		},
		{
			name:     "block comment",
			input:    "/* a * b */x",
			expected: []tok{{"Comment", "/* a * b */"}, {"Identifier", "x"}},
		},
		{
			name:     "empty block comment",
			input:    "/**/",
			expected: []tok{{"Comment", "/**/"}},
		},
		{
			name:  "regular expression",
			input: "/ab+c/gi.test",
			expected: []tok{
				{"RegularExpressionLiteral", "/ab+c/gi"}, {"Dot", "."}, {"Identifier", "test"},
			},
		},
		{
			name:     "escaped slash and class in regular expression",
			input:    `/a\/[/]b/`,
			expected: []tok{{"RegularExpressionLiteral", `/a\/[/]b/`}},
		},
		{
			name:  "division",
			input: "a / b",
			expected: []tok{
				{"Identifier", "a"}, {"WhiteSpace", " "}, {"Divide", "/"}, {"WhiteSpace", " "},
				{"Identifier", "b"},
			},
		},
		{
			name:  "division assignment",
			input: "x /= 2",
			expected: []tok{
				{"Identifier", "x"}, {"WhiteSpace", " "}, {"DivisionAssignment", "/="},
				{"WhiteSpace", " "}, {"IntegerLiteral", "2"},
			},
		},
		{
			name:  "greater than family",
			input: ">>>= >>> >>= >> >= >",
			expected: []tok{
				{"BitwiseUnsignedRightShiftAssignment", ">>>="}, {"WhiteSpace", " "},
				{"BitwiseUnsignedRightShift", ">>>"}, {"WhiteSpace", " "},
				{"BitwiseRightShiftAssignment", ">>="}, {"WhiteSpace", " "},
				{"BitwiseRightShift", ">>"}, {"WhiteSpace", " "},
				{"GreaterThanEqualTo", ">="}, {"WhiteSpace", " "},
				{"GreaterThan", ">"},
			},
		},
		{
			name:  "plus family",
			input: "+ ++ +=",
			expected: []tok{
				{"Plus", "+"}, {"WhiteSpace", " "}, {"Increment", "++"}, {"WhiteSpace", " "},
				{"AdditionAssignment", "+="},
			},
		},
		{
			name:  "equality family",
			input: "= == === != !== !",
			expected: []tok{
				{"Assignment", "="}, {"WhiteSpace", " "}, {"Equal", "=="}, {"WhiteSpace", " "},
				{"StrictEqual", "==="}, {"WhiteSpace", " "}, {"NotEqual", "!="}, {"WhiteSpace", " "},
				{"StrictNotEqual", "!=="}, {"WhiteSpace", " "}, {"LogicalNot", "!"},
			},
		},
		{
			name:  "less than family",
			input: "<<= << <= <",
			expected: []tok{
				{"BitwiseLeftShiftAssignment", "<<="}, {"WhiteSpace", " "},
				{"BitwiseLeftShift", "<<"}, {"WhiteSpace", " "},
				{"LessThanEqualTo", "<="}, {"WhiteSpace", " "},
				{"LessThan", "<"},
			},
		},
		{
			name:  "punctuation",
			input: "f(a[0]){x?y:z;}~**&&||^#",
			expected: []tok{
				{"Identifier", "f"}, {"LeftParen", "("}, {"Identifier", "a"}, {"LeftBracket", "["},
				{"IntegerLiteral", "0"}, {"RightBracket", "]"}, {"RightParen", ")"}, {"LeftBrace", "{"},
				{"Identifier", "x"}, {"QuestionMark", "?"}, {"Identifier", "y"}, {"Colon", ":"},
				{"Identifier", "z"}, {"Semicolon", ";"}, {"RightBrace", "}"}, {"BitwiseNot", "~"},
				{"Exponentiation", "**"}, {"LogicalAnd", "&&"}, {"LogicalOr", "||"}, {"BitwiseXor", "^"},
				{"Unknown", "#"},
			},
		},
		{
			name:  "transitions",
			input: "@x @@",
			expected: []tok{
				{"Transition", "@"}, {"Identifier", "x"}, {"WhiteSpace", " "},
				{"Transition", "@"}, {"Transition", "@"},
			},
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.expected, toks(jsSymbols(tt.input))); diff != "" {
				t.Errorf("symbols mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSTokenizer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		content string
		message string
	}{
		{"unterminated double quoted string", `"abc`, `"abc`, "Unterminated string literal"},
		{"string broken by line", "'abc\nx", "'abc", "Unterminated string literal"},
		{"unterminated block comment", "/* abc *", "/* abc *", "Unterminated block comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			symbols := jsSymbols(tt.input)
			require.NotEmpty(t, symbols)

			first := symbols[0]
			assert.Equal(t, tt.content, first.Content())
			require.Len(t, first.Errors(), 1)
			assert.Equal(t, tt.message, first.Errors()[0].Message)
			assert.Equal(t, source.Zero, first.Errors()[0].Location)
		})
	}
}

func TestJSTokenizer_Keyword(t *testing.T) {
	t.Parallel()

	symbols := jsSymbols("with")
	require.Len(t, symbols, 1)
	kw, ok := symbol.KeywordOf(symbols[0])
	assert.True(t, ok)
	assert.Equal(t, symbol.KeywordWith, kw)
}

func TestJSTokenizer_RegexValidation(t *testing.T) {
	t.Parallel()

	symbols := jsSymbols("/a(/g", tokenizer.WithRegexValidation(true))
	require.Len(t, symbols, 1)
	assert.Equal(t, symbol.JSRegularExpressionLiteral, symbols[0].Type())
	require.Len(t, symbols[0].Errors(), 1)
	assert.Contains(t, symbols[0].Errors()[0].Message, "invalid regular expression")

	symbols = jsSymbols("/a(/g")
	require.Len(t, symbols, 1)
	assert.Empty(t, symbols[0].Errors())

	symbols = jsSymbols("/^a+$/m", tokenizer.WithRegexValidation(true))
	require.Len(t, symbols, 1)
	assert.Empty(t, symbols[0].Errors())
}

func TestValidateRegex(t *testing.T) {
	t.Parallel()

	require.NoError(t, tokenizer.ValidateRegex(`/\d+/gi`))
	require.NoError(t, tokenizer.ValidateRegex(`/^a$/ims`))
	require.NoError(t, tokenizer.ValidateRegex(`/\u0041[\w-]/u`))
	require.ErrorIs(t, tokenizer.ValidateRegex("abc"), tokenizer.ErrNotRegexLiteral)
	require.Error(t, tokenizer.ValidateRegex("/[a/"))
	require.Error(t, tokenizer.ValidateRegex("/a/x"))
}
