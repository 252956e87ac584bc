package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	logLevelKey    = "log-level"
	profileKey     = "profile"
	subscribersKey = "subscribers"
	iterationsKey  = "iterations"
	collectorKey   = "collector"
	markdownKey    = "markdown"
	ordersKey      = "orders"
)

func main() {
	cmd := &cli.Command{
		Name:  "signalbench",
		Usage: "Measure signal emission and connection costs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  logLevelKey,
				Usage: "Log level: debug, info, warn or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "TOML profile with default emit and insert settings",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "emit",
				Usage: "Time Emit against growing subscriber counts",
				Flags: []cli.Flag{
					&cli.IntSliceFlag{
						Name:  subscribersKey,
						Usage: "Subscriber counts to measure (default 1,10,100,1000)",
					},
					&cli.IntFlag{
						Name:  iterationsKey,
						Usage: "Emissions timed per subscriber count",
						Value: 1000,
					},
					&cli.StringFlag{
						Name:  collectorKey,
						Usage: "Result handling: none, last or slice",
						Value: collectNone,
					},
					&cli.BoolFlag{
						Name:  markdownKey,
						Usage: "Render the table as markdown",
					},
				},
				Action: emitAction,
			},
			{
				Name:  "insert",
				Usage: "Compare insert strategies when connecting ordered handlers",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  subscribersKey,
						Usage: "Handlers to connect",
						Value: 10_000,
					},
					&cli.IntFlag{
						Name:  ordersKey,
						Usage: "Distinct order values, drawn at random",
						Value: 16,
					},
				},
				Action: insertAction,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(cmd *cli.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cmd.String(logLevelKey)),
	}))
}

func loadProfile(cmd *cli.Command) (*Profile, error) {
	p, err := LoadProfile(cmd.String(profileKey))
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	p, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	cfg := emitConfig{
		sizes:      p.Emit.Subscribers,
		iterations: p.Emit.Iterations,
		collector:  p.Emit.Collector,
		markdown:   cmd.Bool(markdownKey),
		logger:     newLogger(cmd),
	}
	if cmd.IsSet(subscribersKey) {
		cfg.sizes = nil
		for _, n := range cmd.IntSlice(subscribersKey) {
			cfg.sizes = append(cfg.sizes, int(n))
		}
	}
	if cmd.IsSet(iterationsKey) || cfg.iterations == 0 {
		cfg.iterations = int(cmd.Int(iterationsKey))
	}
	if cmd.IsSet(collectorKey) || cfg.collector == "" {
		cfg.collector = cmd.String(collectorKey)
	}
	if len(cfg.sizes) == 0 {
		cfg.sizes = []int{1, 10, 100, 1_000}
	}

	return runEmit(ctx, os.Stdout, cfg)
}

func insertAction(ctx context.Context, cmd *cli.Command) error {
	p, err := loadProfile(cmd)
	if err != nil {
		return err
	}

	cfg := insertConfig{
		subscribers: p.Insert.Subscribers,
		orders:      p.Insert.Orders,
		logger:      newLogger(cmd),
	}
	if cmd.IsSet(subscribersKey) || cfg.subscribers == 0 {
		cfg.subscribers = int(cmd.Int(subscribersKey))
	}
	if cmd.IsSet(ordersKey) || cfg.orders == 0 {
		cfg.orders = int(cmd.Int(ordersKey))
	}

	return runInsert(ctx, os.Stdout, cfg)
}
