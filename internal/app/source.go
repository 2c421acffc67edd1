package app

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/kyaoi/courseview/internal/outline"
	"github.com/kyaoi/courseview/internal/tree"
)

// Source is where an ingestion batch reads its files from: a folder or a
// saved outline. Files can be called repeatedly; each call is a new batch.
type Source struct {
	Display string
	Files   func() iter.Seq2[tree.File, error]
	// Dirs lists the directories to watch for changes.
	Dirs func() ([]string, error)
}

// OpenSource resolves the target given on the command line.
func OpenSource(target string, skipDirs []string) (Source, error) {
	info, err := os.Stat(target)
	if err != nil {
		return Source{}, err
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return Source{}, err
	}

	if info.IsDir() {
		loader := tree.NewFSLoader(absTarget, skipDirs)
		return Source{
			Display: filepath.Base(absTarget) + "/",
			Files:   loader.Files,
			Dirs:    loader.Dirs,
		}, nil
	}

	display := displayPath(absTarget)
	watchDir := func() ([]string, error) {
		return []string{filepath.Dir(absTarget)}, nil
	}
	if isOutline(absTarget) {
		return Source{
			Display: display,
			Files:   func() iter.Seq2[tree.File, error] { return outlineFiles(absTarget) },
			Dirs:    watchDir,
		}, nil
	}

	// A single file has no folder and cannot form a course.
	name := filepath.Base(absTarget)
	return Source{
		Display: display,
		Files: func() iter.Seq2[tree.File, error] {
			return func(yield func(tree.File, error) bool) {
				yield(tree.File{Name: name}, nil)
			}
		},
		Dirs: watchDir,
	}, nil
}

func outlineFiles(path string) iter.Seq2[tree.File, error] {
	return func(yield func(tree.File, error) bool) {
		name := filepath.Base(path)
		f, err := os.Open(path)
		if err != nil {
			yield(tree.File{Name: name}, err)
			return
		}
		defer f.Close()

		paths, _, err := outline.Read(f)
		if err != nil {
			yield(tree.File{Name: name}, fmt.Errorf("%s: %w", name, err))
			return
		}
		for file, err := range tree.Paths(paths...) {
			if !yield(file, err) {
				return
			}
		}
	}
}

func isOutline(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown")
}

func displayPath(absTarget string) string {
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, absTarget); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(absTarget)
}
