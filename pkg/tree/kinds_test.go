package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/razorlex/pkg/tree"
)

func TestAcceptedCharacters_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value tree.AcceptedCharacters
		want  string
	}{
		{tree.AcceptsNone, "None"},
		{tree.AcceptsNewLine, "NewLine"},
		{tree.AcceptsNonWhiteSpace, "NonWhiteSpace"},
		{tree.AcceptsNewLine | tree.AcceptsNonWhiteSpace, "NewLine|NonWhiteSpace"},
		{tree.AcceptsAllWhiteSpace, "AllWhiteSpace"},
		{tree.AcceptsAnyExceptNewLine, "AnyExceptNewLine"},
		{tree.AcceptsAny, "Any"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestAcceptedCharacters_Allows(t *testing.T) {
	t.Parallel()

	assert.True(t, tree.AcceptsAnyExceptNewLine.AllowsText("a b\t"))
	assert.False(t, tree.AcceptsAnyExceptNewLine.AllowsText("a\nb"))
	assert.True(t, tree.AcceptsAllWhiteSpace.AllowsText(" \r\n"))
	assert.False(t, tree.AcceptsAllWhiteSpace.Allows('x'))
	assert.True(t, tree.AcceptsNone.AllowsText(""))
	assert.False(t, tree.AcceptsNone.AllowsText(" "))
	assert.True(t, tree.AcceptsAny.Has(tree.AcceptsWhiteSpace))
}

func TestKindNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MetaCode", tree.SpanMetaCode.String())
	assert.Equal(t, "SpanKind(42)", tree.SpanKind(42).String())
	assert.Equal(t, "Tag", tree.BlockTag.String())
	assert.Equal(t, "BlockType(-1)", tree.BlockType(-1).String())
	assert.Equal(t, "Code", tree.RoleCode.String())
	assert.Equal(t, "None", tree.NoGenerator{}.String())
	assert.True(t, tree.NoGenerator{}.Equal(tree.NoGenerator{}))
	assert.False(t, tree.NoGenerator{}.Equal(tree.Named("None")))
	assert.True(t, tree.Named("a").Equal(tree.Named("a")))
}

func TestBlockType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     tree.BlockType
		expected string
	}{
		{tree.BlockStatement, "Statement"},
		{tree.BlockDirective, "Directive"},
		{tree.BlockExpression, "Expression"},
		{tree.BlockTemplate, "Template"},
		{tree.BlockComment, "Comment"},
		{tree.BlockTag, "Tag"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}
