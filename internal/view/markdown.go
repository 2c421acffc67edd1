package view

import (
	"fmt"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/kyaoi/courseview/internal/tree"
)

// Markdown renders a projection as a Markdown document: a heading for the
// active section followed by a table of its resources.
func Markdown(p Projection) string {
	var b strings.Builder
	if p.Empty() {
		b.WriteString("_No section selected._\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## %s\n\n", escape(p.Active))
	if len(p.Resources) == 0 {
		b.WriteString("_This section has no files._\n")
		return b.String()
	}

	b.WriteString("| | Name | Type | Path |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, res := range p.Resources {
		kind := res.Type.String()
		if hint := LanguageHint(res); hint != "" {
			kind += " (" + hint + ")"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | `%s` |\n",
			res.Type.Icon(), escape(res.Name), kind, escape(strings.ReplaceAll(res.Path, "`", "'")))
	}
	return b.String()
}

// EmptyMarkdown renders the "awaiting input" state for the given source.
func EmptyMarkdown(source string) string {
	var b strings.Builder
	b.WriteString("# courseview\n\n")
	if source != "" {
		fmt.Fprintf(&b, "No course content found in `%s`.\n\n", source)
	} else {
		b.WriteString("No course loaded.\n\n")
	}
	b.WriteString("Choose a folder laid out as `course/section/file`, for example:\n\n")
	b.WriteString("```\nMath101/\n  Lecture1/\n    notes.pdf\n    slides.pptx\n  Lecture2/\n    reading.docx\n```\n")
	return b.String()
}

// LanguageHint names the language of text-like resources from their file
// name alone. Other resource types have no hint.
func LanguageHint(res tree.Resource) string {
	if res.Type != tree.TypeText && res.Type != tree.TypeOther {
		return ""
	}
	if lang, ok := enry.GetLanguageByExtension(res.Name); ok && lang != "" {
		return lang
	}
	if lang, ok := enry.GetLanguageByFilename(res.Name); ok && lang != "" {
		return lang
	}
	return ""
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
