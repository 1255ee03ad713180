package timer

import (
	"sync"
	"time"
)

// Debouncer delays fn until no new value arrives for the window. Only the last value
// submitted before the pause is delivered; superseded values are dropped.
type Debouncer[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	fn      func(T)
	t       *time.Timer
	seq     uint64
	stopped bool
}

func NewDebouncer[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{window: window, fn: fn}
}

func (d *Debouncer[T]) Submit(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.t != nil {
		d.t.Stop()
	}
	d.seq++
	seq := d.seq
	d.t = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// a newer Submit or Stop raced with this timer
		if d.stopped || seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.t = nil
		d.mu.Unlock()
		d.fn(v)
	})
}

// Pending reports whether a value is waiting for the window to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.t != nil
}

// Stop cancels the pending value. Further submits are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.seq++
	if d.t != nil {
		d.t.Stop()
		d.t = nil
	}
}

// Idle fires once when Reset has not been called for the timeout.
type Idle struct {
	mu      sync.Mutex
	timeout time.Duration
	fn      func()
	t       *time.Timer
	seq     uint64
	stopped bool
}

func NewIdle(timeout time.Duration, fn func()) *Idle {
	i := &Idle{timeout: timeout, fn: fn}
	i.Reset()
	return i
}

func (i *Idle) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.stopped {
		return
	}
	if i.t != nil {
		i.t.Stop()
	}
	i.seq++
	seq := i.seq
	i.t = time.AfterFunc(i.timeout, func() {
		i.mu.Lock()
		if i.stopped || seq != i.seq {
			i.mu.Unlock()
			return
		}
		i.stopped = true
		i.t = nil
		i.mu.Unlock()
		i.fn()
	})
}

func (i *Idle) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stopped = true
	i.seq++
	if i.t != nil {
		i.t.Stop()
		i.t = nil
	}
}

// Cooldown lets an action through at most once per period.
type Cooldown struct {
	mu     sync.Mutex
	period time.Duration
	last   time.Time
	now    func() time.Time
}

func NewCooldown(period time.Duration) *Cooldown {
	return &Cooldown{period: period, now: time.Now}
}

// Allow reports whether the action may run now and, if so, starts a new period.
func (c *Cooldown) Allow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.period {
		return false
	}
	c.last = now
	return true
}

// Reset forgets the last action.
func (c *Cooldown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = time.Time{}
}
