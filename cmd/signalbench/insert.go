package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/zoobzio/signalz"
)

type insertConfig struct {
	subscribers int
	orders      int
	logger      *slog.Logger
}

type insertResult struct {
	strategy signalz.InsertStrategy
	duration time.Duration
	calls    []int
}

// measureInsert connects one handler per entry of orders and emits once,
// recording the dispatch sequence by connection index.
func measureInsert(strategy signalz.InsertStrategy, orders []int) insertResult {
	sig := signalz.New[int](signalz.WithInsertStrategy(strategy))
	res := insertResult{strategy: strategy, calls: make([]int, 0, len(orders))}

	start := time.Now()
	for i, order := range orders {
		sig.Connect(func(int) { res.calls = append(res.calls, i) }, signalz.WithOrder(order))
	}
	res.duration = time.Since(start)

	sig.Emit(0)
	return res
}

func runInsert(ctx context.Context, w io.Writer, cfg insertConfig) error {
	if cfg.subscribers <= 0 || cfg.orders <= 0 {
		return fmt.Errorf("subscribers and orders must be positive, got %d and %d", cfg.subscribers, cfg.orders)
	}

	orders := make([]int, cfg.subscribers)
	for i := range orders {
		orders[i] = rand.Intn(cfg.orders)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"strategy", "handlers", "orders", "time", "connects/ms"})

	var baseline []int
	for _, strategy := range []signalz.InsertStrategy{signalz.InsertFromBack, signalz.InsertFromFront} {
		if err := ctx.Err(); err != nil {
			return err
		}
		cfg.logger.Debug("measuring insert", "strategy", strategy, "handlers", cfg.subscribers)

		res := measureInsert(strategy, orders)
		if baseline == nil {
			baseline = res.calls
		} else if !slices.Equal(baseline, res.calls) {
			return fmt.Errorf("strategy %s dispatches in a different order", strategy)
		}

		var rate float64
		if res.duration > 0 {
			rate = float64(cfg.subscribers) / (float64(res.duration) / float64(time.Millisecond))
		}
		table.Append([]string{
			strategy.String(),
			humanize.Comma(int64(cfg.subscribers)),
			humanize.Comma(int64(cfg.orders)),
			fmt.Sprint(res.duration),
			humanize.Comma(int64(rate)),
		})
	}
	table.Render()
	return nil
}
