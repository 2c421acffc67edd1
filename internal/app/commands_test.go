package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand runs the command line with logs sent to a temp file and returns
// what it printed.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	logFile := filepath.Join(t.TempDir(), "courseview.log")
	t.Setenv("COURSEVIEW_LOG_FILE", logFile)

	var out bytes.Buffer
	cmd := Command()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard
	err := cmd.Run(testContext(), append([]string{"courseview"}, args...))
	return out.String(), logFile, err
}

func TestShowCommand(t *testing.T) {
	root := makeCourse(t)
	out, _, err := runCommand(t, "show", "--plain", "--section", "Lecture2", root)
	require.NoError(t, err)

	assert.Contains(t, out, "# Math101")
	assert.Contains(t, out, "## Lecture2")
	assert.Contains(t, out, "reading.docx")
	assert.NotContains(t, out, "notes.pdf")
}

func TestShowCommandTypeFilter(t *testing.T) {
	root := makeCourse(t)
	out, _, err := runCommand(t, "show", "--plain", "-t", "powerpoint", root)
	require.NoError(t, err)
	assert.Contains(t, out, "slides.pptx")
	assert.NotContains(t, out, "notes.pdf")

	_, _, err = runCommand(t, "show", "--plain", "--type", "spreadsheet", root)
	assert.ErrorContains(t, err, `unknown resource type "spreadsheet"`)
}

func TestOutlineCommandStdout(t *testing.T) {
	root := makeCourse(t)
	out, _, err := runCommand(t, "outline", root)
	require.NoError(t, err)
	assert.Contains(t, out, "course: Math101")
	assert.Contains(t, out, "- Math101/Lecture1/notes.pdf")
}

func TestOutlineCommandOutputFile(t *testing.T) {
	root := makeCourse(t)
	path := filepath.Join(t.TempDir(), "math.md")

	out, logFile, err := runCommand(t, "outline", "--output", path, root)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Math101")
	assert.Contains(t, string(data), "- Math101/Lecture2/reading.docx")

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "outline written")
}

func TestOutlineCommandEmptyFolder(t *testing.T) {
	_, _, err := runCommand(t, "outline", t.TempDir())
	assert.Error(t, err)
}

func TestCommandMissingTarget(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"view"},
		{"show", "--plain"},
		{"outline"},
	} {
		_, _, err := runCommand(t, args...)
		assert.ErrorIs(t, err, errMissingTarget, "args %v", args)
	}
}

func TestCommandInvalidConfig(t *testing.T) {
	root := makeCourse(t)

	t.Setenv("COURSEVIEW_LOG_LEVEL", "loud")
	_, _, err := runCommand(t, "show", "--plain", root)
	assert.ErrorContains(t, err, "configure logging")

	t.Setenv("COURSEVIEW_LOG_LEVEL", "info")
	t.Setenv("COURSEVIEW_TREE_WIDTH", "-1")
	_, _, err = runCommand(t, "show", "--plain", root)
	assert.ErrorContains(t, err, "failed to load config")
}
