package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyaoi/courseview/internal/tree"
)

func sampleCourse() tree.Course {
	course, _ := tree.Build([]string{
		"Math101/Lecture1/notes.pdf",
		"Math101/Lecture1/slides.pptx",
		"Math101/Lecture2/reading.docx",
		"Math101/Empty",
	})
	return course
}

func TestSelectSection(t *testing.T) {
	p := SelectSection(sampleCourse(), "Lecture2")
	assert.Equal(t, Projection{
		Active: "Lecture2",
		Resources: []tree.Resource{
			{Name: "reading.docx", Path: "Math101/Lecture2/reading.docx", Type: tree.TypeWord},
		},
	}, p)
}

func TestSelectSectionUnknown(t *testing.T) {
	p := SelectSection(sampleCourse(), "Lecture9")
	assert.True(t, p.Empty())
	assert.Empty(t, p.Resources)
}

func TestSelectSectionWithoutResources(t *testing.T) {
	p := SelectSection(sampleCourse(), "Empty")
	assert.Equal(t, "Empty", p.Active)
	assert.NotNil(t, p.Resources)
	assert.Empty(t, p.Resources)
}

func TestInitialSelection(t *testing.T) {
	p := InitialSelection(sampleCourse())
	assert.Equal(t, "Lecture1", p.Active)
	assert.Len(t, p.Resources, 2)

	assert.True(t, InitialSelection(tree.Course{}).Empty())
}

func TestSelectionDoesNotMutateCourse(t *testing.T) {
	course := sampleCourse()
	p := SelectSection(course, "Lecture1")
	p.Resources[0].Name = "changed"

	again := SelectSection(course, "Lecture1")
	assert.Equal(t, "notes.pdf", again.Resources[0].Name)
}

func TestFilterByType(t *testing.T) {
	p := InitialSelection(sampleCourse())

	assert.Equal(t, p, FilterByType(p))

	pdfs := FilterByType(p, tree.TypePDF)
	assert.Equal(t, "Lecture1", pdfs.Active)
	assert.Equal(t, []tree.Resource{
		{Name: "notes.pdf", Path: "Math101/Lecture1/notes.pdf", Type: tree.TypePDF},
	}, pdfs.Resources)

	none := FilterByType(p, tree.TypeAudio)
	assert.Equal(t, "Lecture1", none.Active)
	assert.Empty(t, none.Resources)
}
