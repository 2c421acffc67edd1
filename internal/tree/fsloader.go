package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

var errNotDir = errors.New("path is not a directory")

// DefaultSkipDirs are directory names FSLoader never descends into.
var DefaultSkipDirs = []string{".git", "node_modules", ".hg", ".svn", ".idea", ".vscode"}

// FSLoader lists the regular files under a chosen directory the way a folder
// picker reports them: relative paths prefixed with the directory's own name.
type FSLoader struct {
	root     string
	walk     string
	name     string
	skipDirs map[string]bool
}

// NewFSLoader creates a loader for the provided root directory. A nil
// skipDirs uses DefaultSkipDirs. A symlinked root is followed, but paths keep
// the name of the link.
func NewFSLoader(root string, skipDirs []string) *FSLoader {
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs
	}
	skip := make(map[string]bool, len(skipDirs))
	for _, name := range skipDirs {
		skip[strings.ToLower(name)] = true
	}
	walk, err := filepath.EvalSymlinks(root)
	if err != nil {
		walk = root
	}
	return &FSLoader{
		root:     root,
		walk:     walk,
		name:     filepath.Base(root),
		skipDirs: skip,
	}
}

// Root returns the directory the loader reads from.
func (l *FSLoader) Root() string {
	return l.root
}

// Files yields one File per regular file in lexical walk order. Entries that
// cannot be read are yielded with their error so the consumer can skip them.
func (l *FSLoader) Files() iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		info, err := os.Stat(l.walk)
		if err != nil {
			yield(File{}, err)
			return
		}
		if !info.IsDir() {
			yield(File{}, fmt.Errorf("%s: %w", l.root, errNotDir))
			return
		}

		_ = filepath.WalkDir(l.walk, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				if !yield(File{Name: filepath.Base(path)}, err) {
					return fs.SkipAll
				}
				return nil
			}
			if entry.IsDir() {
				if path != l.walk && l.shouldSkipDir(entry.Name()) {
					return fs.SkipDir
				}
				return nil
			}
			if !entry.Type().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(l.walk, path)
			if err != nil {
				if !yield(File{Name: entry.Name()}, err) {
					return fs.SkipAll
				}
				return nil
			}
			file := File{
				RelativePath: join(l.name, filepath.ToSlash(rel)),
				Name:         entry.Name(),
			}
			if !yield(file, nil) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

// Dirs returns every directory the loader would descend into, root included.
// It is used to register file watches, so a symlinked root is reported by its
// target.
func (l *FSLoader) Dirs() ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(l.walk, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == l.walk {
				return err
			}
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		if path != l.walk && l.shouldSkipDir(entry.Name()) {
			return fs.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

// Paths adapts plain path strings into a file source.
func Paths(paths ...string) iter.Seq2[File, error] {
	return func(yield func(File, error) bool) {
		for _, p := range paths {
			segments := Parse(p)
			if !yield(File{RelativePath: p, Name: segments[len(segments)-1]}, nil) {
				return
			}
		}
	}
}

func (l *FSLoader) shouldSkipDir(name string) bool {
	return l.skipDirs[strings.ToLower(name)]
}

func join(base, part string) string {
	if base == "" {
		return part
	}
	return base + "/" + part
}
