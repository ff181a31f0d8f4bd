package service

import "sync"

// LoadingSignal is the process-wide busy indicator for in-flight searches.
// It is a latch, not a counter: overlapping Start calls collapse into one
// visible loading state and a single Complete ends it. Complete without a
// preceding Start is a no-op.
type LoadingSignal struct {
	mu       sync.Mutex
	active   bool
	onChange func(active bool)
}

// NewLoadingSignal creates an idle loading signal
func NewLoadingSignal() *LoadingSignal {
	return &LoadingSignal{}
}

// OnChange registers the observer invoked when the indicator flips state.
// The view uses this to show and hide its progress affordance.
func (l *LoadingSignal) OnChange(fn func(active bool)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// Start marks the indicator busy
func (l *LoadingSignal) Start() {
	l.notify(true)
}

// Complete marks the indicator idle
func (l *LoadingSignal) Complete() {
	l.notify(false)
}

// Active reports whether the indicator is busy
func (l *LoadingSignal) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *LoadingSignal) notify(active bool) {
	l.mu.Lock()
	changed := l.active != active
	l.active = active
	fn := l.onChange
	l.mu.Unlock()

	if changed && fn != nil {
		fn(active)
	}
}
