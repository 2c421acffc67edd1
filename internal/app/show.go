package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/kyaoi/courseview/internal/ingest"
	"github.com/kyaoi/courseview/internal/log"
	"github.com/kyaoi/courseview/internal/outline"
	"github.com/kyaoi/courseview/internal/tree"
	"github.com/kyaoi/courseview/internal/view"
)

const showWrapWidth = 100

// ShowOptions controls the non-interactive rendering of a course.
type ShowOptions struct {
	Section string
	Types   []tree.ResourceType
	Style   string
	// Plain writes Markdown without terminal styling.
	Plain bool
}

// printer is a view.Renderer that writes each rendering to w.
type printer struct {
	w        io.Writer
	renderer *glamour.TermRenderer
	source   string
	course   tree.Course
	opts     ShowOptions
	header   string
	err      error
}

var _ view.Renderer = (*printer)(nil)

func newPrinter(w io.Writer, source string, opts ShowOptions) (*printer, error) {
	p := &printer{w: w, source: source, opts: opts}
	if opts.Plain {
		return p, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.Style),
		glamour.WithWordWrap(showWrapWidth),
	)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	p.renderer = renderer
	return p, nil
}

func (p *printer) OnEmpty() {
	p.write(view.EmptyMarkdown(p.source))
}

func (p *printer) OnReady(courseName string, sectionNames []string, initial view.Projection) {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", courseName)
	b.WriteString("Sections: ")
	for i, name := range sectionNames {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
	}
	b.WriteString("\n\n")
	p.header = b.String()

	if p.opts.Section != "" {
		p.OnSectionSelected(view.SelectSection(p.course, p.opts.Section))
		return
	}
	p.OnSectionSelected(initial)
}

func (p *printer) OnSectionSelected(selection view.Projection) {
	p.write(p.header + view.Markdown(view.FilterByType(selection, p.opts.Types...)))
}

func (p *printer) write(md string) {
	if p.err != nil {
		return
	}
	out := md
	if p.renderer != nil {
		rendered, err := p.renderer.Render(md)
		if err != nil {
			p.err = fmt.Errorf("render: %w", err)
			return
		}
		out = rendered
	}
	if _, err := io.WriteString(p.w, out); err != nil {
		p.err = err
	}
}

// Show ingests the target once and writes the selected section to w.
func Show(ctx context.Context, w io.Writer, target string, skipDirs []string, opts ShowOptions) error {
	outcome, src, err := ingestOnce(ctx, target, skipDirs)
	if err != nil {
		return err
	}
	p, err := newPrinter(w, src.Display, opts)
	if err != nil {
		return err
	}
	p.course = outcome.Course
	outcome.Present(p)
	return p.err
}

// Export ingests the target once and writes it as an outline to w.
func Export(ctx context.Context, w io.Writer, target string, skipDirs []string) error {
	outcome, src, err := ingestOnce(ctx, target, skipDirs)
	if err != nil {
		return err
	}
	if !outcome.Ready() {
		return fmt.Errorf("no course content found in %s", src.Display)
	}
	return outline.Write(w, outcome.Course, time.Now())
}

func ingestOnce(ctx context.Context, target string, skipDirs []string) (ingest.Outcome, Source, error) {
	src, err := OpenSource(target, skipDirs)
	if err != nil {
		return ingest.Outcome{}, Source{}, err
	}
	ingester := ingest.New(log.SubLogger(log.FromContext(ctx), "ingest"))
	return ingester.Ingest(ctx, src.Files()), src, nil
}
