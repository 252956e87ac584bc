package benchmarks

import (
	"math/rand"
	"time"
)

// TestEvent represents realistic event data for benchmarking
type TestEvent struct {
	ID        int
	Timestamp int64
	Payload   []byte
	Type      string
}

// generateRealisticEvents creates events with a realistic payload size distribution
func generateRealisticEvents(n int) []TestEvent {
	events := make([]TestEvent, n)
	types := []string{"user.action", "order.created", "payment.processed", "system.alert"}

	for i := range events {
		events[i] = TestEvent{
			ID:        i,
			Timestamp: time.Now().UnixNano(),
			Type:      types[rand.Intn(len(types))],
			Payload:   make([]byte, 256+rand.Intn(768)),
		}
		for j := range events[i].Payload {
			events[i].Payload[j] = byte(i + j)
		}
	}
	return events
}

// generateOrders returns n connection orders drawn from k buckets, so
// roughly n/k handlers share each order.
func generateOrders(n, k int) []int {
	orders := make([]int, n)
	for i := range orders {
		orders[i] = rand.Intn(k)
	}
	return orders
}
