// Package mainloop moves work onto a UI toolkit's main loop.
package mainloop

import "sync"

// Coalescer keeps at most one mergeable main-loop task per key. Posting
// again for a key whose task has not run yet replaces the task without
// scheduling another one, so the loop only sees the latest value of a burst.
// Seal stops waiting tasks from being replaced; they keep their place in
// the loop and later posts schedule fresh tasks behind them.
type Coalescer[K comparable] struct {
	mu        sync.Mutex
	open      map[K]*task
	post      func(func())
	scheduled int
	merged    uint64
	stopped   bool
}

type task struct {
	fn func()
}

// NewCoalescer creates a coalescer scheduling through post.
func NewCoalescer[K comparable](post func(func())) *Coalescer[K] {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer[K]{
		open: make(map[K]*task),
		post: post,
	}
}

// Post schedules fn for key, or replaces the open task waiting for key.
func (c *Coalescer[K]) Post(key K, fn func()) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	if t, ok := c.open[key]; ok {
		t.fn = fn
		c.merged++
		c.mu.Unlock()
		return
	}
	t := &task{fn: fn}
	c.open[key] = t
	c.scheduled++
	c.mu.Unlock()

	c.post(func() { c.run(key, t) })
}

// Seal closes every waiting task to replacement. Call it before posting
// work that must run after the values posted so far.
func (c *Coalescer[K]) Seal() {
	c.mu.Lock()
	clear(c.open)
	c.mu.Unlock()
}

func (c *Coalescer[K]) run(key K, t *task) {
	c.mu.Lock()
	fn := t.fn
	if c.open[key] == t {
		delete(c.open, key)
	}
	stopped := c.stopped
	if !stopped {
		c.scheduled--
	}
	c.mu.Unlock()

	if !stopped {
		fn()
	}
}

// Pending returns the number of tasks waiting for the main loop.
func (c *Coalescer[K]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scheduled
}

// Merged returns how many posts replaced a waiting task.
func (c *Coalescer[K]) Merged() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.merged
}

// Destroy drops waiting tasks; later posts are ignored.
func (c *Coalescer[K]) Destroy() {
	c.mu.Lock()
	c.stopped = true
	c.scheduled = 0
	clear(c.open)
	c.mu.Unlock()
}
