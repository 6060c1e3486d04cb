package driver

import "sync"

// Sink receives each frame's rendered snapshot. Replace fully overwrites
// prior content; there is no incremental or diff update.
type Sink interface {
	Replace(s string) error
}

// BufferSink retains the most recent snapshot in memory.
type BufferSink struct {
	mu     sync.Mutex
	last   string
	writes int
}

// Replace stores s as the current content.
func (b *BufferSink) Replace(s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = s
	b.writes++
	return nil
}

// Contents returns the last written snapshot.
func (b *BufferSink) Contents() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Writes returns how many snapshots have been written.
func (b *BufferSink) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}
