package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/razorlex/pkg/text"
)

func TestChange_Kinds(t *testing.T) {
	t.Parallel()

	old := text.NewStringBuffer("abc")
	updated := text.NewStringBuffer("abxc")

	tests := []struct {
		name      string
		change    text.Change
		isInsert  bool
		isDelete  bool
		isReplace bool
	}{
		{"insert", text.NewChangeAt(2, 0, old, 1, updated), true, false, false},
		{"delete", text.NewChangeAt(2, 1, old, 0, updated), false, true, false},
		{"replace", text.NewChangeAt(2, 1, old, 2, updated), false, false, true},
		{"empty", text.NewChangeAt(2, 0, old, 0, updated), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.isInsert, tt.change.IsInsert())
			assert.Equal(t, tt.isDelete, tt.change.IsDelete())
			assert.Equal(t, tt.isReplace, tt.change.IsReplace())
		})
	}
}

func TestChange_Text(t *testing.T) {
	t.Parallel()

	old := text.NewStringBuffer("xtabcd")
	updated := text.NewStringBuffer("testabcd")
	old.SetPosition(3)

	change := text.NewChangeAt(0, 2, old, 3, updated)
	assert.Equal(t, "xt", change.OldText())
	assert.Equal(t, "tes", change.NewText())
	assert.Equal(t, 3, old.Position(), "cursor restored")
	assert.Equal(t, `(0:2 "xt") => (0:3 "tes")`, change.String())
}

func TestChange_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		change   text.Change
		content  string
		offset   int
		expected string
	}{
		{
			name:     "replace at start",
			change:   text.NewChangeAt(0, 1, text.NewStringBuffer("xabcd"), 3, text.NewStringBuffer("tesabcd")),
			content:  "xabcd",
			expected: "tesabcd",
		},
		{
			name:     "delete with offset",
			change:   text.NewChangeAt(10, 1, text.NewStringBuffer(""), 0, text.NewStringBuffer("")),
			content:  "abcdefg",
			offset:   10,
			expected: "bcdefg",
		},
		{
			name:     "insert inside",
			change:   text.NewChangeAt(1, 0, text.NewStringBuffer("abcdefg"), 2, text.NewStringBuffer("abcbcdefg")),
			content:  "abcdefg",
			expected: "abcbcdefg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.change.Apply(tt.content, tt.offset))
		})
	}
}

func TestChange_Normalize(t *testing.T) {
	t.Parallel()

	old := text.NewStringBuffer("Date")
	updated := text.NewStringBuffer("Date.")

	normalized := text.NewChangeAt(0, 4, old, 5, updated).Normalize()
	assert.True(t, normalized.Equal(text.NewChange(4, 0, old, 4, 1, updated)), normalized.String())
	assert.True(t, normalized.IsInsert())

	unrelated := text.NewChangeAt(0, 4, old, 5, text.NewStringBuffer("Other"))
	assert.True(t, unrelated.Normalize().Equal(unrelated))

	insert := text.NewChangeAt(4, 0, old, 1, updated)
	assert.True(t, insert.Normalize().Equal(insert))
}
