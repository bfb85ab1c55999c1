package menu

import (
	"fmt"
	"sync"
	"time"

	"qrmenu/internal/structs"
	"qrmenu/pkg/utils"
)

const DefaultSessionTTL = 30 * time.Minute

// sessions keeps open views by client session id. Entries idle for longer
// than ttl are dropped.
type sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	views map[string]*sessionEntry
}

type sessionEntry struct {
	view *View
	seen time.Time
}

func newSessions(ttl time.Duration) *sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessions{
		ttl:   ttl,
		now:   time.Now,
		views: make(map[string]*sessionEntry),
	}
}

func (s *sessions) put(id string, v *View) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	if id == "" {
		id = utils.GenKSUID()
	}
	s.views[id] = &sessionEntry{view: v, seen: now}
	return id
}

func (s *sessions) get(id string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.views[id]
	now := s.now()
	if !ok || now.Sub(e.seen) > s.ttl {
		delete(s.views, id)
		return nil, fmt.Errorf("session %q: %w", id, structs.ErrNotFound)
	}
	e.seen = now
	return e.view, nil
}

// sweep must be called with mu held.
func (s *sessions) sweep(now time.Time) {
	for id, e := range s.views {
		if now.Sub(e.seen) > s.ttl {
			delete(s.views, id)
		}
	}
}
