package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/pixellabs/pixellab"
)

func main() {
	cmd := &cli.Command{
		Name:                  "pixellab",
		Usage:                 "Create and render node-graph animations",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			initCommand(),
			renderCommand(),
			infoCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("pixellab failed", "error", err)
		os.Exit(1)
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter project file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Project file to write",
				Value:   "project.pixellab.json",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Project name",
				Value: "starter",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd.String("log-level"))

			p := pixellab.DemoProject()
			p.Name = cmd.String("name")

			path := cmd.String("out")
			if err := pixellab.SaveProject(path, p); err != nil {
				return err
			}
			slog.Info("wrote starter project", "path", path, "id", p.ID)
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a project to a PNG frame sequence",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project",
				Aliases:  []string{"p"},
				Usage:    "Project file to render",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Directory for the frame files",
				Value:   "frames",
			},
			&cli.IntFlag{
				Name:  "frames",
				Usage: "Frame count (0 renders one full loop)",
				Value: 0,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd.String("log-level"))

			p, err := pixellab.LoadProject(cmd.String("project"))
			if err != nil {
				return err
			}
			tl := p.Timeline

			frames := cmd.Int("frames")
			if frames <= 0 {
				frames = int(math.Round(tl.Duration().Seconds() * tl.FPS))
			}
			outDir := cmd.String("out")
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}

			logger := slog.With("project", p.Name, "frames", frames, "fps", tl.FPS)
			logger.Info("rendering")

			step := time.Duration(float64(time.Second) / tl.FPS)
			for i := 0; i < frames; i++ {
				tl.SetPlayhead((time.Duration(i) * step) % tl.Duration())
				img, err := pixellab.RenderFrame(tl)
				if err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
				path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", i))
				if err := img.WritePNG(path); err != nil {
					return fmt.Errorf("frame %d: %w", i, err)
				}
			}

			logger.Info("rendered", "dir", outDir)
			return nil
		},
	}
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Summarize a project file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project",
				Aliases:  []string{"p"},
				Usage:    "Project file to inspect",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd.String("log-level"))

			p, err := pixellab.LoadProject(cmd.String("project"))
			if err != nil {
				return err
			}
			tl := p.Timeline
			fmt.Printf("%s (%s)\n", p.Name, p.ID)
			fmt.Printf("  %.0f fps, %d block(s), %s total\n", tl.FPS, len(tl.Blocks()), tl.Duration())
			for i, b := range tl.Blocks() {
				fmt.Printf("  block %d: %s, %d nodes, %d links\n",
					i, b.Duration, b.Graph.NodeCount(), len(b.Graph.Links()))
			}
			return nil
		},
	}
}

func setupLogging(logLevel string) {
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
