// Package view derives render-ready selections from a course without
// changing it.
package view

import (
	"slices"

	"github.com/kyaoi/courseview/internal/tree"
)

// Projection is the selection state shown to the user: the active section and
// the resources currently listed. An empty Active means nothing is selected.
type Projection struct {
	Active    string
	Resources []tree.Resource
}

// Empty reports whether no section is active.
func (p Projection) Empty() bool {
	return p.Active == ""
}

// Renderer receives the outcome of an ingestion and subsequent section
// switches.
type Renderer interface {
	OnEmpty()
	OnReady(courseName string, sectionNames []string, initial Projection)
	OnSectionSelected(p Projection)
}

// SelectSection projects the named section. Unknown names yield an empty
// projection.
func SelectSection(course tree.Course, sectionName string) Projection {
	section, ok := course.Section(sectionName)
	if !ok {
		return Projection{}
	}
	return fromSection(section)
}

// InitialSelection projects the first section of the course, or nothing when
// the course has no sections.
func InitialSelection(course tree.Course) Projection {
	section, ok := course.FirstSection()
	if !ok {
		return Projection{}
	}
	return fromSection(section)
}

// FilterByType keeps only resources of the given types. With no types the
// projection is returned unchanged.
func FilterByType(p Projection, types ...tree.ResourceType) Projection {
	if len(types) == 0 {
		return p
	}
	out := Projection{Active: p.Active, Resources: []tree.Resource{}}
	for _, res := range p.Resources {
		if slices.Contains(types, res.Type) {
			out.Resources = append(out.Resources, res)
		}
	}
	return out
}

func fromSection(section tree.Section) Projection {
	resources := section.Resources
	if resources == nil {
		resources = []tree.Resource{}
	}
	return Projection{Active: section.Name, Resources: resources}
}
