package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want ResourceType
	}{
		{"notes.pdf", TypePDF},
		{"NOTES.PDF", TypePDF},
		{"essay.doc", TypeWord},
		{"essay.docx", TypeWord},
		{"deck.ppt", TypePowerPoint},
		{"deck.pptx", TypePowerPoint},
		{"grades.xls", TypeExcel},
		{"grades.XLSX", TypeExcel},
		{"readme.txt", TypeText},
		{"lecture.mp4", TypeVideo},
		{"podcast.mp3", TypeAudio},
		{"photo.jpg", TypeImage},
		{"photo.JPEG", TypeImage},
		{"diagram.png", TypeImage},
		{"archive.tar.gz", TypeOther},
		{"Makefile", TypeOther},
		{"trailing.", TypeOther},
		{".pdf", TypePDF},
		{"report.pdf.bak", TypeOther},
		{"", TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestClassifyAlwaysReturnsKnownType(t *testing.T) {
	inputs := []string{"", ".", "..", "a.b.c", "ünïcödé.PdF", "x/y.z", "\x00.\xff"}
	for _, in := range inputs {
		assert.Contains(t, ResourceTypes, Classify(in), "input %q", in)
	}
}

func TestParseResourceType(t *testing.T) {
	got, ok := ParseResourceType("powerpoint")
	assert.True(t, ok)
	assert.Equal(t, TypePowerPoint, got)

	_, ok = ParseResourceType("spreadsheet")
	assert.False(t, ok)
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "📄", TypePDF.Icon())
	assert.Equal(t, "📎", TypeOther.Icon())
	assert.Equal(t, "📎", ResourceType("unknown").Icon())
	for _, rt := range ResourceTypes {
		assert.NotEmpty(t, rt.Icon(), rt.String())
	}
}
