package signalz

// ResultHandler receives handler results during EmitCollecting.
// HandleResult returns false to stop the emission.
type ResultHandler[R any] interface {
	HandleResult(result R) bool
}

// Collector emits a ResultSignal and aggregates the handler results.
// Accumulated state survives repeated emissions until Reset.
type Collector[T, R any] interface {
	ResultHandler[R]
	Emit(v T)
	Reset()
}

var (
	_ Collector[struct{}, int]  = (*LastCollector[struct{}, int])(nil)
	_ Collector[struct{}, int]  = (*SliceCollector[struct{}, int])(nil)
	_ Collector[struct{}, bool] = (*UntilFalseCollector[struct{}])(nil)
	_ Collector[struct{}, bool] = (*WhileFalseCollector[struct{}])(nil)
)

// LastCollector keeps the result of the last handler called.
type LastCollector[T, R any] struct {
	signal *ResultSignal[T, R]
	result R
	ok     bool
}

// NewLastCollector binds a LastCollector to signal.
func NewLastCollector[T, R any](signal *ResultSignal[T, R]) *LastCollector[T, R] {
	return &LastCollector[T, R]{signal: signal}
}

// Emit emits the bound signal with v.
func (c *LastCollector[T, R]) Emit(v T) {
	c.signal.EmitCollecting(c, v)
}

// HandleResult stores result and continues the emission.
func (c *LastCollector[T, R]) HandleResult(result R) bool {
	c.result = result
	c.ok = true
	return true
}

// Result returns the last stored result. ok is false if no handler
// has run since creation or the last Reset.
func (c *LastCollector[T, R]) Result() (result R, ok bool) {
	return c.result, c.ok
}

// Reset forgets the stored result.
func (c *LastCollector[T, R]) Reset() {
	var zero R
	c.result = zero
	c.ok = false
}

// SliceCollector keeps every result, in dispatch order.
type SliceCollector[T, R any] struct {
	signal  *ResultSignal[T, R]
	results []R
}

// NewSliceCollector binds a SliceCollector to signal.
func NewSliceCollector[T, R any](signal *ResultSignal[T, R]) *SliceCollector[T, R] {
	return &SliceCollector[T, R]{signal: signal}
}

// Emit emits the bound signal with v. Results are appended to those of
// earlier emissions.
func (c *SliceCollector[T, R]) Emit(v T) {
	c.signal.EmitCollecting(c, v)
}

// HandleResult appends result and continues the emission.
func (c *SliceCollector[T, R]) HandleResult(result R) bool {
	c.results = append(c.results, result)
	return true
}

// Result returns the collected results. The slice is owned by the
// collector until the next Emit or Reset.
func (c *SliceCollector[T, R]) Result() []R {
	return c.results
}

// Reset drops the collected results.
func (c *SliceCollector[T, R]) Reset() {
	c.results = nil
}

// UntilFalseCollector keeps emitting while handlers return true and
// stops at the first false.
type UntilFalseCollector[T any] struct {
	signal *ResultSignal[T, bool]
	result bool
}

// NewUntilFalseCollector binds an UntilFalseCollector to signal.
func NewUntilFalseCollector[T any](signal *ResultSignal[T, bool]) *UntilFalseCollector[T] {
	return &UntilFalseCollector[T]{signal: signal}
}

// Emit emits the bound signal with v.
func (c *UntilFalseCollector[T]) Emit(v T) {
	c.signal.EmitCollecting(c, v)
}

// HandleResult stores result and continues only if it is true.
func (c *UntilFalseCollector[T]) HandleResult(result bool) bool {
	c.result = result
	return result
}

// Result returns the last stored result, false if none.
func (c *UntilFalseCollector[T]) Result() bool {
	return c.result
}

// Reset sets the stored result back to false.
func (c *UntilFalseCollector[T]) Reset() {
	c.result = false
}

// WhileFalseCollector keeps emitting while handlers return false and
// stops at the first true.
type WhileFalseCollector[T any] struct {
	signal *ResultSignal[T, bool]
	result bool
}

// NewWhileFalseCollector binds a WhileFalseCollector to signal.
func NewWhileFalseCollector[T any](signal *ResultSignal[T, bool]) *WhileFalseCollector[T] {
	return &WhileFalseCollector[T]{signal: signal}
}

// Emit emits the bound signal with v.
func (c *WhileFalseCollector[T]) Emit(v T) {
	c.signal.EmitCollecting(c, v)
}

// HandleResult stores result and continues only if it is false.
func (c *WhileFalseCollector[T]) HandleResult(result bool) bool {
	c.result = result
	return !result
}

// Result returns the last stored result, false if none.
func (c *WhileFalseCollector[T]) Result() bool {
	return c.result
}

// Reset sets the stored result back to false.
func (c *WhileFalseCollector[T]) Reset() {
	c.result = false
}
