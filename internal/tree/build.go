package tree

// BuildStats records what a build did with its input.
type BuildStats struct {
	// Paths is the number of paths seen.
	Paths int
	// Ignored counts bare names that carry no folder.
	Ignored int
	// Dropped counts resources whose section could not be found.
	Dropped int
}

// Build organizes the given relative paths into a course. The first path with
// a folder names the course, every distinct second segment becomes a section,
// and every path at least three segments deep is added to its section.
// Input order decides naming and insertion order.
func Build(paths []string) (Course, BuildStats) {
	course := Course{index: make(map[string]int)}
	stats := BuildStats{Paths: len(paths)}

	parsed := make([][]string, len(paths))
	for i, raw := range paths {
		parsed[i] = Parse(raw)
	}

	for _, parts := range parsed {
		if Depth(parts) < minNamingDepth {
			stats.Ignored++
			continue
		}
		if course.name == "" {
			course.name = parts[0]
		}
		course.addSection(parts[1])
	}

	for i, parts := range parsed {
		if Depth(parts) < minResourceDepth {
			continue
		}
		if !course.addResource(parts[1], NewResource(paths[i])) {
			stats.Dropped++
		}
	}

	return course, stats
}

func (c *Course) addSection(name string) {
	if name == "" {
		return
	}
	if _, ok := c.index[name]; ok {
		return
	}
	c.index[name] = len(c.sections)
	c.sections = append(c.sections, Section{Name: name})
}

func (c *Course) addResource(section string, res Resource) bool {
	idx, ok := c.index[section]
	if !ok {
		return false
	}
	c.sections[idx].Resources = append(c.sections[idx].Resources, res)
	return true
}
