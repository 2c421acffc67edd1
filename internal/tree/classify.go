package tree

import "strings"

// ResourceType is the semantic tag of a resource, derived from its file name.
type ResourceType string

const (
	TypePDF        ResourceType = "PDF"
	TypeWord       ResourceType = "Word"
	TypePowerPoint ResourceType = "PowerPoint"
	TypeExcel      ResourceType = "Excel"
	TypeText       ResourceType = "Text"
	TypeVideo      ResourceType = "Video"
	TypeAudio      ResourceType = "Audio"
	TypeImage      ResourceType = "Image"
	TypeOther      ResourceType = "Other"
)

// ResourceTypes lists every tag Classify can return.
var ResourceTypes = []ResourceType{
	TypePDF,
	TypeWord,
	TypePowerPoint,
	TypeExcel,
	TypeText,
	TypeVideo,
	TypeAudio,
	TypeImage,
	TypeOther,
}

var extensionTypes = map[string]ResourceType{
	"pdf":  TypePDF,
	"doc":  TypeWord,
	"docx": TypeWord,
	"ppt":  TypePowerPoint,
	"pptx": TypePowerPoint,
	"xls":  TypeExcel,
	"xlsx": TypeExcel,
	"txt":  TypeText,
	"mp4":  TypeVideo,
	"mp3":  TypeAudio,
	"jpg":  TypeImage,
	"jpeg": TypeImage,
	"png":  TypeImage,
}

var typeIcons = map[ResourceType]string{
	TypePDF:        "📄",
	TypeWord:       "📝",
	TypePowerPoint: "📊",
	TypeExcel:      "📈",
	TypeText:       "📃",
	TypeVideo:      "🎥",
	TypeAudio:      "🎵",
	TypeImage:      "🖼️",
	TypeOther:      "📎",
}

// Classify maps a file name to its resource type using only the lowercased
// text after the last dot. Names without a dot, and unknown extensions, are
// TypeOther.
func Classify(fileName string) ResourceType {
	if t, ok := extensionTypes[extension(fileName)]; ok {
		return t
	}
	return TypeOther
}

// ParseResourceType resolves a tag name case-insensitively.
func ParseResourceType(name string) (ResourceType, bool) {
	for _, t := range ResourceTypes {
		if strings.EqualFold(string(t), name) {
			return t, true
		}
	}
	return "", false
}

// Icon returns the glyph shown next to resources of this type.
func (t ResourceType) Icon() string {
	if icon, ok := typeIcons[t]; ok {
		return icon
	}
	return typeIcons[TypeOther]
}

func (t ResourceType) String() string {
	return string(t)
}

func extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
