package output_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/ezerfernandes/mdrender/internal/mdcode"
	"github.com/ezerfernandes/mdrender/internal/output"
	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = "text\n```foo\n    line1\n    line2\n```\nmore text\n```\n    line3\n```"

func TestWrite(t *testing.T) {
	t.Parallel()

	mfs := memoryfs.New()
	writer := &output.Writer{FS: mfs, Naming: output.DefaultNaming}

	files, err := writer.Write(mdcode.Scan([]byte(document)))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "render0.mk", files[0].Name)
	assert.Equal(t, "render1.mk", files[1].Name)

	data, err := fs.ReadFile(mfs, "render0.mk")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", string(data))

	data, err = fs.ReadFile(mfs, "render1.mk")
	require.NoError(t, err)
	assert.Equal(t, "line3", string(data))
}

func TestWriteNoBlocks(t *testing.T) {
	t.Parallel()

	mfs := memoryfs.New()
	writer := &output.Writer{FS: mfs, Naming: output.DefaultNaming}

	files, err := writer.Write(mdcode.Scan([]byte("no fences here\n")))
	require.NoError(t, err)
	assert.Empty(t, files)

	entries, err := fs.ReadDir(mfs, ".")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteSkipsUnterminated(t *testing.T) {
	t.Parallel()

	mfs := memoryfs.New()
	writer := &output.Writer{FS: mfs, Naming: output.DefaultNaming}

	files, err := writer.Write(mdcode.Scan([]byte("```\n    a\n```\n```\n    dangling\n")))
	require.NoError(t, err)
	require.Len(t, files, 1)

	_, err = fs.Stat(mfs, "render1.mk")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteKeepsIndexWhenFiltered(t *testing.T) {
	t.Parallel()

	blocks := mdcode.Scan([]byte(document))

	mfs := memoryfs.New()
	writer := &output.Writer{FS: mfs, Naming: output.Naming{Prefix: "block_", Ext: ".txt"}}

	files, err := writer.Write(blocks[1:])
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "block_1.txt", files[0].Name)
}

type failingFS struct {
	output.FS
	fail string
}

var errDiskFull = errors.New("disk full")

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if name == f.fail {
		return errDiskFull
	}

	return f.FS.WriteFile(name, data, perm)
}

func TestWriteAbortsOnFailure(t *testing.T) {
	t.Parallel()

	mfs := memoryfs.New()
	writer := &output.Writer{FS: &failingFS{FS: mfs, fail: "render0.mk"}, Naming: output.DefaultNaming}

	files, err := writer.Write(mdcode.Scan([]byte(document)))
	require.ErrorIs(t, err, errDiskFull)
	assert.Empty(t, files)

	_, err = fs.Stat(mfs, "render1.mk")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestDirFSOverwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "render0.mk"), []byte("stale content"), 0o600))

	writer := &output.Writer{FS: output.DirFS(dir), Naming: output.DefaultNaming}

	_, err := writer.Write(mdcode.Scan([]byte(document)))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "render0.mk"))
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", string(data))
}
