package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/signalz"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestRunEmitRendersRowPerSize(t *testing.T) {
	for _, collector := range []string{collectNone, collectLast, collectSlice} {
		t.Run(collector, func(t *testing.T) {
			var buf bytes.Buffer
			err := runEmit(context.Background(), &buf, emitConfig{
				sizes:      []int{1, 10},
				iterations: 5,
				collector:  collector,
				logger:     discardLogger(),
			})
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "emit: 1 subscribers")
			assert.Contains(t, out, "emit: 10 subscribers")
			assert.Contains(t, out, collector+" collector")
		})
	}
}

func TestRunEmitMarkdown(t *testing.T) {
	var buf bytes.Buffer
	err := runEmit(context.Background(), &buf, emitConfig{
		sizes:      []int{3},
		iterations: 2,
		collector:  collectNone,
		markdown:   true,
		logger:     discardLogger(),
	})
	require.NoError(t, err)
	assert.True(t, strings.Contains(buf.String(), "| emit: 3 subscribers |"), "got %s", buf.String())
}

func TestRunEmitRejectsBadInput(t *testing.T) {
	err := runEmit(context.Background(), io.Discard, emitConfig{
		sizes: []int{1}, iterations: 1, collector: "median", logger: discardLogger(),
	})
	assert.ErrorContains(t, err, `unknown collector "median"`)

	err = runEmit(context.Background(), io.Discard, emitConfig{
		sizes: []int{1}, iterations: 0, collector: collectNone, logger: discardLogger(),
	})
	assert.Error(t, err)
}

func TestRunEmitStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := runEmit(ctx, io.Discard, emitConfig{
		sizes: []int{1}, iterations: 1, collector: collectNone, logger: discardLogger(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmitterRepeatsWithReset(t *testing.T) {
	emit, err := emitter(4, collectSlice, discardLogger())
	require.NoError(t, err)
	emit(1)
	emit(2)
}

func TestMeasureInsertOrder(t *testing.T) {
	orders := []int{2, 0, 1, 0, 2}
	want := []int{1, 3, 2, 0, 4}

	for _, strategy := range []signalz.InsertStrategy{signalz.InsertFromBack, signalz.InsertFromFront} {
		res := measureInsert(strategy, orders)
		assert.Equal(t, want, res.calls, "strategy %s", strategy)
	}
}

func TestRunInsert(t *testing.T) {
	var buf bytes.Buffer
	err := runInsert(context.Background(), &buf, insertConfig{
		subscribers: 2_500,
		orders:      4,
		logger:      discardLogger(),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "back")
	assert.Contains(t, out, "front")
	assert.Contains(t, out, "2,500")
}

func TestRunInsertRejectsBadInput(t *testing.T) {
	err := runInsert(context.Background(), io.Discard, insertConfig{subscribers: 0, orders: 1, logger: discardLogger()})
	assert.Error(t, err)
}

func TestProfileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.toml")

	var p Profile
	p.Emit.Subscribers = []int{5, 50}
	p.Emit.Iterations = 20
	p.Emit.Collector = collectLast
	p.Insert.Orders = 3
	require.NoError(t, SaveProfile(path, &p))

	loaded, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, p, *loaded)
}

func TestLoadProfileEmptyPath(t *testing.T) {
	p, err := LoadProfile("")
	require.NoError(t, err)
	assert.Empty(t, p.Emit.Subscribers)
	assert.Zero(t, p.Insert.Subscribers)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
