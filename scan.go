package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sourceExt = ".py"

// sourceFile is one discovered input file together with the dotted document
// name derived from its position in the scanned tree (pkg.mod for
// pkg/mod.py).
type sourceFile struct {
	path string
	name string
}

// scanFile resolves a single explicit input file.
func scanFile(path string) ([]sourceFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory (use --input-dir)", path)
	}
	return []sourceFile{{path: path, name: documentName("", path)}}, nil
}

// scanDir lists the source files under dir, descending into subdirectories
// when recursive is set. Entries are visited in lexical order.
func scanDir(dir string, recursive bool) ([]sourceFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return scanDirPrefixed(dir, "", recursive)
}

func scanDirPrefixed(dir, prefix string, recursive bool) ([]sourceFile, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []sourceFile
	for _, ent := range dirents {
		path := filepath.Join(dir, ent.Name())
		switch {
		case ent.IsDir():
			if !recursive {
				continue
			}
			sub, err := scanDirPrefixed(path, prefix+ent.Name()+".", recursive)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		case filepath.Ext(ent.Name()) == sourceExt:
			files = append(files, sourceFile{path: path, name: documentName(prefix, path)})
		}
	}
	return files, nil
}

func documentName(prefix, path string) string {
	base := filepath.Base(path)
	return prefix + strings.TrimSuffix(base, filepath.Ext(base))
}
