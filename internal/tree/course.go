package tree

// Resource is one ingested file.
type Resource struct {
	Name string
	Path string
	Type ResourceType
}

// NewResource builds a resource for the given path, classifying it by its
// final segment.
func NewResource(path string) Resource {
	segments := Parse(path)
	name := segments[len(segments)-1]
	return Resource{
		Name: name,
		Path: path,
		Type: Classify(name),
	}
}

// Section groups the resources found under one first-level subfolder.
type Section struct {
	Name      string
	Resources []Resource
}

// Populated reports whether the section holds at least one resource.
func (s Section) Populated() bool {
	return len(s.Resources) > 0
}

func (s Section) clone() Section {
	out := Section{Name: s.Name}
	if s.Resources != nil {
		out.Resources = append([]Resource(nil), s.Resources...)
	}
	return out
}

// Course is the result of one ingestion batch. It is immutable once Build
// returns; the zero value is the empty course.
type Course struct {
	name     string
	sections []Section
	index    map[string]int
}

// Name returns the course name, empty when no path named one.
func (c Course) Name() string {
	return c.name
}

// Valid reports whether the course can be displayed: it needs a name and at
// least one section.
func (c Course) Valid() bool {
	return c.name != "" && len(c.sections) > 0
}

// Len returns the number of sections.
func (c Course) Len() int {
	return len(c.sections)
}

// Sections returns a copy of the sections in first-encounter order.
func (c Course) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.clone()
	}
	return out
}

// SectionNames returns the section names in first-encounter order.
func (c Course) SectionNames() []string {
	names := make([]string, len(c.sections))
	for i, s := range c.sections {
		names[i] = s.Name
	}
	return names
}

// Section returns the section with the given name if it exists.
func (c Course) Section(name string) (Section, bool) {
	idx, ok := c.index[name]
	if !ok {
		return Section{}, false
	}
	return c.sections[idx].clone(), true
}

// FirstSection returns the first section in insertion order.
func (c Course) FirstSection() (Section, bool) {
	if len(c.sections) == 0 {
		return Section{}, false
	}
	return c.sections[0].clone(), true
}

// ResourceCount returns the total number of resources across sections.
func (c Course) ResourceCount() int {
	total := 0
	for _, s := range c.sections {
		total += len(s.Resources)
	}
	return total
}
