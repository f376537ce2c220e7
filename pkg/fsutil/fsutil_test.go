package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	textPath := filepath.Join(dir, "index.cshtml")
	require.NoError(t, os.WriteFile(textPath, []byte("<p>@name</p>"), 0o644))
	binaryPath := filepath.Join(dir, "image.html")
	require.NoError(t, os.WriteFile(binaryPath, []byte{'<', 0, 1, 2}, 0o644))

	content, info, err := fsutil.ReadFile(context.Background(), textPath)
	require.NoError(t, err)
	assert.Equal(t, "<p>@name</p>", string(content))
	assert.Equal(t, textPath, info.Path)
	assert.Equal(t, int64(12), info.Size)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "missing.html"), fsutil.ErrNotFound},
		{"directory", dir, fsutil.ErrIsDirectory},
		{"binary", binaryPath, fsutil.ErrBinary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := fsutil.ReadFile(context.Background(), tt.path)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := fsutil.ReadFile(ctx, "whatever")
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	content, info, err := fsutil.ReadInput(context.Background(), "-", strings.NewReader("let a;"))
	require.NoError(t, err)
	assert.Equal(t, "let a;", string(content))
	assert.Equal(t, fsutil.StdinPath, info.Path)

	_, _, err = fsutil.ReadInput(context.Background(), "-", strings.NewReader("\x00"))
	require.ErrorIs(t, err, fsutil.ErrBinary)

	_, _, err = fsutil.ReadInput(context.Background(), filepath.Join(t.TempDir(), "nope"), nil)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestIsBinary(t *testing.T) {
	t.Parallel()

	assert.False(t, fsutil.IsBinary(nil))
	assert.False(t, fsutil.IsBinary([]byte("plain\ntext")))
	assert.True(t, fsutil.IsBinary([]byte("a\x00b")))
	late := append([]byte(strings.Repeat("a", 9000)), 0)
	assert.False(t, fsutil.IsBinary(late), "only the leading bytes are sniffed")
}
