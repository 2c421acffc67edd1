// Package outline saves a course as Markdown with YAML front matter and reads
// it back as a list of paths.
package outline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/kyaoi/courseview/internal/tree"
)

const itemPrefix = "- "

// Meta is the front matter of an outline.
type Meta struct {
	Course    string `yaml:"course"`
	Sections  int    `yaml:"sections"`
	Resources int    `yaml:"resources"`
	Generated string `yaml:"generated,omitempty"`
}

// Write saves the course as an outline. Each section opens with its folder
// path, which names the course and registers the section on re-read, followed
// by its resource paths.
func Write(w io.Writer, course tree.Course, generated time.Time) error {
	meta := Meta{
		Course:    course.Name(),
		Sections:  course.Len(),
		Resources: course.ResourceCount(),
	}
	if !generated.IsZero() {
		meta.Generated = generated.UTC().Format(time.RFC3339)
	}

	head, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode front matter: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(head)
	b.WriteString("---\n")
	fmt.Fprintf(&b, "# %s\n", course.Name())
	for _, section := range course.Sections() {
		fmt.Fprintf(&b, "\n## %s\n\n", section.Name)
		b.WriteString(itemPrefix + course.Name() + "/" + section.Name + "\n")
		for _, res := range section.Resources {
			b.WriteString(itemPrefix + res.Path + "\n")
		}
	}

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("write outline: %w", err)
	}
	return nil
}

// Read parses an outline and returns its paths in document order.
func Read(r io.Reader) ([]string, Meta, error) {
	var meta Meta
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("parse front matter: %w", err)
	}

	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, itemPrefix) {
			continue
		}
		if path := strings.TrimPrefix(line, itemPrefix); path != "" {
			paths = append(paths, path)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Meta{}, fmt.Errorf("read outline body: %w", err)
	}
	return paths, meta, nil
}
