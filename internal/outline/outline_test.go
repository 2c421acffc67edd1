package outline

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/courseview/internal/tree"
)

func TestWrite(t *testing.T) {
	course, _ := tree.Build([]string{
		"Math101/Lecture1/notes.pdf",
		"Math101/Lecture1/slides.pptx",
		"Math101/Lecture2",
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, course, time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)))

	head, body, ok := strings.Cut(strings.TrimPrefix(buf.String(), "---\n"), "---\n")
	require.True(t, ok)
	assert.Contains(t, head, "course: Math101\n")
	assert.Contains(t, head, "sections: 2\n")
	assert.Contains(t, head, "resources: 2\n")
	assert.Contains(t, head, "2026-10-19T10:00:00Z")

	want := `# Math101

## Lecture1

- Math101/Lecture1
- Math101/Lecture1/notes.pdf
- Math101/Lecture1/slides.pptx

## Lecture2

- Math101/Lecture2
`
	assert.Equal(t, want, body)
}

func TestRoundTrip(t *testing.T) {
	course, _ := tree.Build([]string{
		"Math101/Lecture1/notes.pdf",
		"Math101/Lecture1/slides.pptx",
		"Math101/Lecture2/reading.docx",
		"Math101/Lecture3",
		"Math101/Lecture2/extra/clip.mp4",
	})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, course, time.Time{}))
	assert.NotContains(t, buf.String(), "generated")

	paths, meta, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, Meta{Course: "Math101", Sections: 3, Resources: 4}, meta)

	rebuilt, _ := tree.Build(paths)
	assert.Equal(t, course, rebuilt)
}

func TestRoundTripMixedRoots(t *testing.T) {
	course, _ := tree.Build([]string{
		"Physics/Intro",
		"Chemistry/Intro/a.pdf",
		"Physics/Labs/b.txt",
	})
	require.Equal(t, "Physics", course.Name())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, course, time.Time{}))

	paths, _, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Physics/Intro",
		"Chemistry/Intro/a.pdf",
		"Physics/Labs",
		"Physics/Labs/b.txt",
	}, paths)

	rebuilt, _ := tree.Build(paths)
	assert.Equal(t, course, rebuilt)
}

func TestReadWithoutFrontMatter(t *testing.T) {
	paths, meta, err := Read(strings.NewReader("# Bio\n\n- Bio/Week1/cells.png\nnot an item\n-\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bio/Week1/cells.png"}, paths)
	assert.Equal(t, Meta{}, meta)
}

func TestReadMalformedFrontMatter(t *testing.T) {
	_, _, err := Read(strings.NewReader("---\ncourse: [unterminated\n---\n- a/b/c\n"))
	assert.Error(t, err)
}
