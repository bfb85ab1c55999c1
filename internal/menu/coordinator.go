package menu

import (
	"context"
	"strconv"
	"sync"

	"qrmenu/internal/structs"
)

// Key is the parameter tuple a section fetch depends on.
type Key struct {
	Brand    string
	Branch   int64
	Category *int64
}

func (k Key) String() string {
	cat := "all"
	if k.Category != nil {
		cat = strconv.FormatInt(*k.Category, 10)
	}
	return k.Brand + "/" + strconv.FormatInt(k.Branch, 10) + "/" + cat
}

// Ticket identifies one in-flight request of a slot.
type Ticket struct {
	slot   string
	key    Key
	seq    uint64
	cancel context.CancelFunc
}

func (t *Ticket) Key() Key { return t.key }

// Coordinator tracks the latest request per slot. Starting a request with a
// different key cancels the one in flight, and any result finished after a
// newer start is reported as superseded.
type Coordinator struct {
	mu     sync.Mutex
	seq    uint64
	active map[string]*Ticket
}

func NewCoordinator() *Coordinator {
	return &Coordinator{active: map[string]*Ticket{}}
}

func (c *Coordinator) Start(ctx context.Context, slot string, key Key) (context.Context, *Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &Ticket{slot: slot, key: key, seq: c.seq, cancel: cancel}
	if prev, ok := c.active[slot]; ok && prev.key.String() != key.String() {
		prev.cancel()
	}
	c.active[slot] = t
	return ctx, t
}

// Finish releases t. It returns ErrSuperseded when a newer request was
// started for the same slot, in which case the result must be dropped.
func (c *Coordinator) Finish(t *Ticket) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer t.cancel()
	cur, ok := c.active[t.slot]
	if !ok || cur.seq != t.seq {
		return structs.ErrSuperseded
	}
	delete(c.active, t.slot)
	return nil
}

// Cancel aborts the pending request of slot. Its result will be superseded.
func (c *Coordinator) Cancel(slot string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.active[slot]; ok {
		t.cancel()
		delete(c.active, slot)
	}
}
