// Command transkana converts mixed English/Japanese text into a katakana
// reading, either once from the command line or as an HTTP service.
//
// Usage:
//
//	transkana convert [--compact] [--japanese-readings] [text...]
//	transkana serve
//	transkana migrate
//	transkana env
//
// convert reads standard input when no text is given. Every command reads
// configuration from --config (or CONFIG_PATH) and the environment.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/transkana/internal/adapter/postgres"
	"github.com/heartmarshall/transkana/internal/app"
	"github.com/heartmarshall/transkana/internal/config"
	"github.com/heartmarshall/transkana/internal/service/transkana"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "transkana:", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "transkana",
		Usage:   "read English and Japanese text aloud in katakana",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config file",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Commands: []*cli.Command{
			convertCommand(),
			{
				Name:  "serve",
				Usage: "run the HTTP conversion service",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return app.Run(ctx, cmd.String("config"))
				},
			},
			{
				Name:   "migrate",
				Usage:  "apply PostgreSQL migrations for the words table",
				Action: migrate,
			},
			{
				Name:  "env",
				Usage: "list the environment variables the service reads",
				Action: func(_ context.Context, cmd *cli.Command) error {
					usage, err := config.Usage()
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.Root().Writer, usage)
					return err
				},
			},
		},
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert text to katakana",
		ArgsUsage: "[text...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "compact", Usage: "drop spaces next to Japanese text"},
			&cli.BoolFlag{Name: "japanese-readings", Usage: "replace kanji and hiragana with their katakana reading"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadFrom(cmd.String("config"))
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			text := strings.Join(cmd.Args().Slice(), " ")
			if cmd.Args().Len() == 0 {
				b, err := io.ReadAll(cmd.Root().Reader)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(b), "\r\n")
			}

			opts := transkana.Options{
				Compact:          cfg.Engine.Compact,
				JapaneseReadings: cfg.Engine.JapaneseReadings,
			}
			if cmd.IsSet("compact") {
				opts.Compact = cmd.Bool("compact")
			}
			if cmd.IsSet("japanese-readings") {
				opts.JapaneseReadings = cmd.Bool("japanese-readings")
			}

			rt, err := app.Bootstrap(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.LoadLexicon(ctx); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, rt.Engine.Exec(text, opts))
			return err
		},
	}
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadFrom(cmd.String("config"))
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("migrate: DATABASE_DSN is not set")
	}
	return postgres.Migrate(ctx, cfg.Database.DSN, app.NewLogger(cfg.Log))
}
