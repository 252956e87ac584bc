package signalz_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zoobzio/signalz"
)

type Point struct {
	X, Y int
}

func ExampleSignal() {
	moved := signalz.New[Point](signalz.WithName("cursor.moved"))

	conn := moved.Connect(func(p Point) {
		fmt.Println("moved to", p.X, p.Y)
	})
	moved.Emit(Point{X: 1, Y: 2})

	conn.Disconnect()
	moved.Emit(Point{X: 3, Y: 4})
	// Output: moved to 1 2
}

func ExampleWithOrder() {
	saved := signalz.New[string]()
	saved.Connect(func(doc string) { fmt.Println("notify", doc) })
	saved.Connect(func(doc string) { fmt.Println("audit", doc) }, signalz.WithOrder(-1))
	saved.Connect(func(doc string) { fmt.Println("metrics", doc) }, signalz.WithOrder(1))

	saved.Emit("report.txt")
	// Output:
	// audit report.txt
	// notify report.txt
	// metrics report.txt
}

func ExampleConnectionGroup() {
	opened := signalz.New[string]()
	closed := signalz.New[string]()

	var conns signalz.ConnectionGroup
	conns.Add(
		opened.Connect(func(name string) { fmt.Println("opened", name) }),
		closed.Connect(func(name string) { fmt.Println("closed", name) }),
	)

	opened.Emit("a.txt")
	fmt.Println("disconnected", conns.DisconnectAll())
	closed.Emit("a.txt")
	// Output:
	// opened a.txt
	// disconnected 2
}

func ExampleUntilFalseCollector() {
	type window struct {
		title string
		dirty bool
	}

	closing := signalz.NewResult[*window, bool]()
	closing.Connect(func(w *window) bool {
		fmt.Println("checking unsaved changes in", w.title)
		return !w.dirty
	})
	closing.Connect(func(w *window) bool {
		fmt.Println("checking running jobs in", w.title)
		return true
	})

	veto := signalz.NewUntilFalseCollector(closing)
	veto.Emit(&window{title: "draft", dirty: true})
	fmt.Println("may close:", veto.Result())
	// Output:
	// checking unsaved changes in draft
	// may close: false
}

func ExampleSliceCollector() {
	sizes := signalz.NewResult[string, int]()
	sizes.Connect(func(s string) int { return len(s) })
	sizes.Connect(func(s string) int { return len(s) * 2 })

	all := signalz.NewSliceCollector(sizes)
	all.Emit("abc")
	fmt.Println(all.Result())
	// Output: [3 6]
}

func ExampleWithOnce() {
	ready := signalz.New[struct{}]()
	ready.Connect(func(struct{}) { fmt.Println("first ready") }, signalz.WithOnce())

	ready.Emit(struct{}{})
	ready.Emit(struct{}{})
	fmt.Println("remaining:", ready.Count())
	// Output:
	// first ready
	// remaining: 0
}

func ExampleWithLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	sig := signalz.New[int](signalz.WithName("jobs.done"), signalz.WithLogger(logger))
	sig.Connect(func(int) {})
	sig.DisconnectAll()
	// Output: level=DEBUG msg="signal disconnected all handlers" signal=jobs.done count=1 depth=0
}
