// Package ingest runs one ingestion batch from a file source to an outcome.
package ingest

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/kyaoi/courseview/internal/tree"
	"github.com/kyaoi/courseview/internal/view"
)

// State is the display state an outcome leads to.
type State int

const (
	Empty State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	default:
		return "empty"
	}
}

// Outcome is the result of one batch. Course is only meaningful when State
// is Ready.
type Outcome struct {
	State  State
	Course tree.Course
	// Skipped counts entries the source could not decode.
	Skipped int
	// Dropped counts resources that had no section to go into.
	Dropped int
	At      time.Time
}

// Ready reports whether the outcome carries a displayable course.
func (o Outcome) Ready() bool {
	return o.State == Ready
}

// Present hands the outcome to a renderer.
func (o Outcome) Present(r view.Renderer) {
	if !o.Ready() {
		r.OnEmpty()
		return
	}
	r.OnReady(o.Course.Name(), o.Course.SectionNames(), view.InitialSelection(o.Course))
}

// Ingester turns file sources into outcomes.
type Ingester struct {
	logger *slog.Logger
	now    func() time.Time
}

func New(logger *slog.Logger) *Ingester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingester{logger: logger, now: time.Now}
}

// Ingest consumes the whole source and builds a course from it. Entries the
// source reports with an error are skipped. A cancelled context or a panic
// while reading the batch leaves the outcome Empty.
func (i *Ingester) Ingest(ctx context.Context, files iter.Seq2[tree.File, error]) (out Outcome) {
	out = Outcome{State: Empty, At: i.now()}
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("ingestion aborted", "err", fmt.Errorf("panic: %v", r))
			out = Outcome{State: Empty, Skipped: out.Skipped, At: out.At}
		}
	}()

	var paths []string
	for file, err := range files {
		if ctx.Err() != nil {
			i.logger.Info("ingestion superseded", "err", ctx.Err())
			return Outcome{State: Empty, Skipped: out.Skipped, At: out.At}
		}
		if err != nil {
			out.Skipped++
			i.logger.Warn("skipping entry", "name", file.Name, "err", err)
			continue
		}
		paths = append(paths, file.Path())
	}

	course, stats := tree.Build(paths)
	out.Dropped = stats.Dropped
	if stats.Dropped > 0 {
		i.logger.Warn("dropped resources without a section", "count", stats.Dropped)
	}
	if stats.Ignored > 0 {
		i.logger.Debug("ignored entries without a folder", "count", stats.Ignored)
	}

	if !course.Valid() {
		i.logger.Info("no course content found", "files", len(paths), "skipped", out.Skipped)
		return out
	}

	out.State = Ready
	out.Course = course
	i.logger.Info("course ingested",
		"course", course.Name(),
		"sections", course.Len(),
		"resources", course.ResourceCount(),
		"skipped", out.Skipped,
	)
	return out
}
