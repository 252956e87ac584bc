package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/zoobzio/signalz"
)

const (
	collectNone  = "none"
	collectLast  = "last"
	collectSlice = "slice"
)

type emitConfig struct {
	sizes      []int
	iterations int
	collector  string
	markdown   bool
	logger     *slog.Logger
}

// emitter returns a function that performs one emission on a signal with
// n subscribers, using the configured result handling.
func emitter(n int, collector string, logger *slog.Logger) (func(int), error) {
	sig := signalz.NewResult[int, int](
		signalz.WithName(fmt.Sprintf("bench.%d", n)),
		signalz.WithLogger(logger),
	)
	for i := 0; i < n; i++ {
		sig.Connect(func(v int) int { return v + i })
	}

	switch collector {
	case collectNone:
		return sig.Emit, nil
	case collectLast:
		c := signalz.NewLastCollector(sig)
		return func(v int) {
			c.Reset()
			c.Emit(v)
		}, nil
	case collectSlice:
		c := signalz.NewSliceCollector(sig)
		return func(v int) {
			c.Reset()
			c.Emit(v)
		}, nil
	default:
		return nil, fmt.Errorf("unknown collector %q", collector)
	}
}

func runEmit(ctx context.Context, w io.Writer, cfg emitConfig) error {
	if cfg.iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", cfg.iterations)
	}

	tbl := table.NewWriter()
	tbl.SetTitle(fmt.Sprintf("Emit (%s collector)", cfg.collector))
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range cfg.sizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		emit, err := emitter(n, cfg.collector, cfg.logger)
		if err != nil {
			return err
		}
		cfg.logger.Debug("measuring emit", "subscribers", n, "iterations", cfg.iterations)

		tach := tachymeter.New(&tachymeter.Config{Size: cfg.iterations})
		for i := 0; i < cfg.iterations; i++ {
			start := time.Now()
			emit(i)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("emit: %d subscribers", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if cfg.markdown {
		tbl.RenderMarkdown()
	} else {
		tbl.Render()
	}
	return nil
}
