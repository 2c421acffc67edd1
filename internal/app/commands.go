package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/kyaoi/courseview/internal/config"
	"github.com/kyaoi/courseview/internal/log"
	"github.com/kyaoi/courseview/internal/tree"
)

const envHelp = `
Environment variables:
	COURSEVIEW_TREE_WIDTH      (default: 28)
	COURSEVIEW_STYLE           (default: tokyo-night)
	COURSEVIEW_WATCH           (default: true)
	COURSEVIEW_WATCH_DEBOUNCE  (default: 250ms)
	COURSEVIEW_SKIP_DIRS       (comma-separated list, default: .git,node_modules,.hg,.svn,.idea,.vscode)
	COURSEVIEW_LOG_LEVEL       (default: info)
	COURSEVIEW_LOG_FILE        (viewer logs are discarded unless set)
`

var errMissingTarget = errors.New("missing <folder|outline.md> argument")

// Command returns the courseview command line. Without a subcommand it opens
// the viewer.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "courseview",
		Usage:     "organize a course folder into sections and resources",
		ArgsUsage: "<folder|outline.md>",
		Action:    viewAction,
		Commands: []*cli.Command{
			viewCommand(),
			showCommand(),
			outlineCommand(),
		},
	}
}

func viewCommand() *cli.Command {
	return &cli.Command{
		Name:        "view",
		Usage:       "browse a course folder interactively",
		ArgsUsage:   "<folder|outline.md>",
		Description: envHelp,
		Action:      viewAction,
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:        "show",
		Usage:       "print one section of a course",
		ArgsUsage:   "<folder|outline.md>",
		Description: envHelp,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "section",
				Aliases: []string{"s"},
				Usage:   "section to print (default: the first one)",
			},
			&cli.StringSliceFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "only list resources of this type (PDF, Word, PowerPoint, Excel, Text, Video, Audio, Image, Other)",
			},
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "write Markdown without terminal styling",
			},
		},
		Action: showAction,
	}
}

func outlineCommand() *cli.Command {
	return &cli.Command{
		Name:        "outline",
		Usage:       "export a course folder as a Markdown outline",
		ArgsUsage:   "<folder>",
		Description: envHelp,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to this file instead of stdout",
			},
		},
		Action: outlineAction,
	}
}

func viewAction(ctx context.Context, cmd *cli.Command) error {
	target, err := targetArg(cmd)
	if err != nil {
		return err
	}
	ctx, cfg, closeLog, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer closeLog()

	log.FromContext(ctx).Info("starting viewer", "target", target)
	return Run(ctx, target, cfg)
}

func showAction(ctx context.Context, cmd *cli.Command) error {
	target, err := targetArg(cmd)
	if err != nil {
		return err
	}
	ctx, cfg, closeLog, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer closeLog()

	types, err := parseTypes(cmd.StringSlice("type"))
	if err != nil {
		return err
	}
	return Show(ctx, cmd.Root().Writer, target, cfg.SkipDirs, ShowOptions{
		Section: cmd.String("section"),
		Types:   types,
		Style:   cfg.Style,
		Plain:   cmd.Bool("plain"),
	})
}

func outlineAction(ctx context.Context, cmd *cli.Command) error {
	target, err := targetArg(cmd)
	if err != nil {
		return err
	}
	ctx, cfg, closeLog, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer closeLog()

	w := cmd.Root().Writer
	if path := cmd.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create outline: %w", err)
		}
		defer f.Close()
		w = f
	}

	counter := &countingWriter{w: w}
	if err := Export(ctx, counter, target, cfg.SkipDirs); err != nil {
		return err
	}
	log.FromContext(ctx).Info("outline written", "bytes", humanize.Bytes(uint64(counter.n)))
	return nil
}

// setup loads the configuration and points logging at its destination. The
// viewer owns the terminal, so without a log file its records are dropped.
func setup(ctx context.Context, interactive bool) (context.Context, *config.Config, func(), error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var fallback io.Writer = os.Stderr
	if interactive {
		fallback = io.Discard
	}
	closeLog, err := log.Setup(cfg.LogLevel, cfg.LogFile, fallback)
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("configure logging: %w", err)
	}

	ctx = log.IntoContext(ctx, log.New("courseview"))
	return ctx, cfg, closeLog, nil
}

func targetArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() == 0 {
		return "", errMissingTarget
	}
	return cmd.Args().First(), nil
}

func parseTypes(names []string) ([]tree.ResourceType, error) {
	var types []tree.ResourceType
	for _, name := range names {
		t, ok := tree.ParseResourceType(name)
		if !ok {
			return nil, fmt.Errorf("unknown resource type %q", name)
		}
		types = append(types, t)
	}
	return types, nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
