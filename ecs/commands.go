package ecs

// Commands buffers work that must not run while systems are executing. The
// Scheduler flushes it once every system of the frame has finished.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at flush time, after the functions queued before it.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued functions in order and resets the buffer. Functions
// queued during the flush run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
