package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyaoi/courseview/internal/tree"
)

func TestMarkdown(t *testing.T) {
	md := Markdown(InitialSelection(sampleCourse()))

	assert.Contains(t, md, "## Lecture1")
	assert.Contains(t, md, "| 📄 | notes.pdf | PDF | `Math101/Lecture1/notes.pdf` |")
	assert.Contains(t, md, "| 📊 | slides.pptx | PowerPoint | `Math101/Lecture1/slides.pptx` |")
}

func TestMarkdownEmptyStates(t *testing.T) {
	assert.Contains(t, Markdown(Projection{}), "No section selected")
	assert.Contains(t, Markdown(SelectSection(sampleCourse(), "Empty")), "no files")
}

func TestMarkdownEscapesPipes(t *testing.T) {
	course, _ := tree.Build([]string{"C/S/a|b.pdf"})
	md := Markdown(InitialSelection(course))
	assert.Contains(t, md, `a\|b.pdf`)
}

func TestEmptyMarkdown(t *testing.T) {
	assert.Contains(t, EmptyMarkdown("/tmp/x"), "No course content found in `/tmp/x`")
	assert.Contains(t, EmptyMarkdown(""), "No course loaded")
}

func TestLanguageHint(t *testing.T) {
	assert.Equal(t, "Go", LanguageHint(tree.NewResource("C/S/main.go")))
	assert.Empty(t, LanguageHint(tree.NewResource("C/S/notes.pdf")))
}
