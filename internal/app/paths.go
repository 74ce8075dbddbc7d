package app

import (
	"os"
	"path/filepath"
)

// Paths holds resolved filesystem paths for the .reli/ project directory.
type Paths struct {
	Root string // .reli/
	DB   string // .reli/reli.db
}

// NewPaths constructs all resolved paths from a project root directory.
func NewPaths(projectRoot string) *Paths {
	root := filepath.Join(projectRoot, ".reli")
	return &Paths{
		Root: root,
		DB:   filepath.Join(root, "reli.db"),
	}
}

// EnsureDirs creates the .reli/ directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
