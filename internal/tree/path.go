package tree

import "strings"

const (
	// minNamingDepth is the depth from which a path names the course and a section.
	minNamingDepth = 2
	// minResourceDepth is the depth from which a path is a resource (course/section/file).
	minResourceDepth = 3
)

// Parse splits a relative path into its "/"-separated segments. Empty
// segments are kept as produced by the split.
func Parse(rawPath string) []string {
	return strings.Split(rawPath, "/")
}

// Depth reports the number of segments in a parsed path.
func Depth(segments []string) int {
	return len(segments)
}

// File is a single entry handed over by a file-selection source. Only the
// relative path and the name are read; contents are never opened.
type File struct {
	RelativePath string
	Name         string
}

// Path returns the relative path, falling back to the bare name when the
// source did not provide one.
func (f File) Path() string {
	if f.RelativePath != "" {
		return f.RelativePath
	}
	return f.Name
}
