package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

type Settings struct {
	// Window is the number of most recent calls the failure ratio is computed over.
	Window int
	// Cooldown is how long the breaker stays open before probing again.
	Cooldown time.Duration
	// FailureRatio in (0,1] opens the breaker once reached within the window.
	FailureRatio float64
	// RecoveryCalls successful probes in half-open close the breaker.
	RecoveryCalls int
}

type circuitBreaker struct {
	mu       sync.Mutex
	settings Settings
	now      func() time.Time

	state    State
	openedAt time.Time
	outcomes []bool // true marks a failed call
	pos      int
	probes   int
}

func New(s Settings) CircuitBreaker {
	return newBreaker(s, time.Now)
}

func newBreaker(s Settings, now func() time.Time) *circuitBreaker {
	if s.Window <= 0 {
		s.Window = 1
	}
	if s.RecoveryCalls <= 0 {
		s.RecoveryCalls = 1
	}
	return &circuitBreaker{
		settings: s,
		now:      now,
		state:    Closed,
		outcomes: make([]bool, s.Window),
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	if !cb.allow() {
		return ErrOpen
	}
	err := fn()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != Open {
		return true
	}
	if cb.now().Sub(cb.openedAt) < cb.settings.Cooldown {
		return false
	}
	cb.state = HalfOpen
	cb.probes = 0
	return true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.outcomes[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.outcomes)

	switch cb.state {
	case HalfOpen:
		if failed {
			cb.trip()
			return
		}
		cb.probes++
		if cb.probes >= cb.settings.RecoveryCalls {
			cb.reset()
		}
	case Closed:
		fails := 0
		for _, f := range cb.outcomes {
			if f {
				fails++
			}
		}
		if float64(fails)/float64(len(cb.outcomes)) >= cb.settings.FailureRatio {
			cb.trip()
		}
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.probes = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.outcomes {
		cb.outcomes[i] = false
	}
	cb.pos = 0
	cb.probes = 0
	cb.state = Closed
}
