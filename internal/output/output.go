// Package output writes extracted code blocks to numbered files.
package output

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ezerfernandes/mdrender/internal/mdcode"
)

const fileMode = 0o644

// FS is a filesystem that can be written to.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// DirFS returns an [FS] rooted at dir on the local filesystem.
func DirFS(dir string) FS {
	return &dirFS{FS: os.DirFS(dir), dir: dir}
}

type dirFS struct {
	fs.FS
	dir string
}

func (d *dirFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(filepath.Join(d.dir, filepath.FromSlash(name)), data, perm)
}

// Naming builds output file names from a block index.
type Naming struct {
	Prefix string
	Ext    string
}

// DefaultNaming produces render0.mk, render1.mk and so on.
var DefaultNaming = Naming{Prefix: "render", Ext: ".mk"}

// Name returns the file name for the block with the given index.
func (n Naming) Name(index int) string {
	return fmt.Sprintf("%s%d%s", n.Prefix, index, n.Ext)
}

// File is a written block.
type File struct {
	Name  string
	Block *mdcode.Block
}

// Writer writes blocks into a filesystem.
type Writer struct {
	FS     FS
	Naming Naming
}

// Write writes every block to its own file, overwriting existing files, and
// returns the written files in the order of blocks. The first failure aborts
// the remaining writes.
func (w *Writer) Write(blocks mdcode.Blocks) ([]File, error) {
	files := make([]File, 0, len(blocks))

	for _, block := range blocks {
		name := w.Naming.Name(block.Index)

		if err := w.FS.WriteFile(name, block.Code(), fileMode); err != nil {
			return files, fmt.Errorf("write block %d: %w", block.Index, err)
		}

		files = append(files, File{Name: name, Block: block})
	}

	return files, nil
}
