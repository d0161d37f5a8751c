package io

import (
	"io/fs"
	"path"
)

const (
	SOURCE_EXT = ".pasm" // Required source file extension.
)

// OpenSource opens a pseudo-assembly source file from a file system.
func OpenSource(fsys fs.FS, name string) (file fs.File, err error) {
	if path.Ext(name) != SOURCE_EXT {
		err = ErrSourceExtension(name)
		return
	}

	return fsys.Open(name)
}
