package sequencer

import (
	"sync"

	"github.com/akyairhashvil/restbreak/internal/util"
)

// Rotation remembers the last exercise shown in this process, so a new
// session starts where the previous one left off instead of at the top.
// One Rotation is created at startup and handed to every Sequencer.
type Rotation struct {
	mu   sync.Mutex
	last int
}

// NewRotation returns a rotation whose first session starts at exercise 0.
func NewRotation() *Rotation {
	return &Rotation{last: -1}
}

// NewRotationAt returns a rotation whose first session starts at exercise start.
func NewRotationAt(start int) *Rotation {
	return &Rotation{last: start - 1}
}

// Start picks the first exercise of a session over n exercises and records it.
func (r *Rotation) Start(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = util.Wrap(r.last+1, n)
	return r.last
}

// Record notes that exercise i is now being shown.
func (r *Rotation) Record(i int) {
	r.mu.Lock()
	r.last = i
	r.mu.Unlock()
}

// Last is the most recently shown exercise, -1 before any session.
func (r *Rotation) Last() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
