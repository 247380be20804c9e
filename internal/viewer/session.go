package viewer

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"archarad-app/internal/catalog"
	"archarad-app/internal/domain/postcards"
)

var ErrNoSession = errors.New("viewer session not found")

// DefaultTTL is how long an idle session survives before it is reaped.
const DefaultTTL = 30 * time.Minute

// scrollState reifies the background-scroll suspension per session. Clients
// mirror the flag; the registry guarantees it is cleared when the session
// ends, however it ends.
type scrollState struct {
	locked bool
}

func (s *scrollState) Suspend() { s.locked = true }
func (s *scrollState) Resume()  { s.locked = false }

type session struct {
	cursor   *Cursor
	scroll   *scrollState
	lastSeen time.Time
}

// State is the session view returned to clients.
type State struct {
	SessionID    string              `json:"session_id"`
	Open         bool                `json:"open"`
	Position     int                 `json:"position"`
	Length       int                 `json:"length"`
	HasPrev      bool                `json:"has_prev"`
	HasNext      bool                `json:"has_next"`
	ScrollLocked bool                `json:"scroll_locked"`
	Record       *postcards.Postcard `json:"record,omitempty"`
}

// Registry tracks viewer sessions by id, each owning one cursor. Expired
// sessions are closed (releasing their scroll suspension) and removed on
// the next registry access.
type Registry struct {
	mu       sync.Mutex
	cat      *catalog.Catalog
	ttl      time.Duration
	sessions map[string]*session
	now      func() time.Time
}

func NewRegistry(cat *catalog.Catalog, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		cat:      cat,
		ttl:      ttl,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Open starts a new session positioned on the given record. An unknown id
// yields no session.
func (r *Registry) Open(recordID string) (State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reapLocked()

	scroll := &scrollState{}
	cur := NewCursor(scroll)
	if !cur.Open(r.cat, recordID) {
		return State{}, false
	}

	id := uuid.NewString()
	r.sessions[id] = &session{cursor: cur, scroll: scroll, lastSeen: r.now()}
	return r.stateLocked(id), true
}

// Get returns the current state of a session.
func (r *Registry) Get(id string) (State, error) {
	return r.apply(id, func(*Cursor) {})
}

// Prev, Next and Key drive the session's cursor.
func (r *Registry) Prev(id string) (State, error) {
	return r.apply(id, func(c *Cursor) { c.Prev() })
}

func (r *Registry) Next(id string) (State, error) {
	return r.apply(id, func(c *Cursor) { c.Next() })
}

func (r *Registry) Key(id string, k Key) (State, error) {
	return r.apply(id, func(c *Cursor) { c.HandleKey(k) })
}

// Close ends the session explicitly. The final closed state is returned so
// the client can observe the released scroll lock.
func (r *Registry) Close(id string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reapLocked()

	s, ok := r.sessions[id]
	if !ok {
		return State{}, ErrNoSession
	}
	s.cursor.Close()
	st := r.stateLocked(id)
	delete(r.sessions, id)
	return st, nil
}

func (r *Registry) apply(id string, fn func(*Cursor)) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reapLocked()

	s, ok := r.sessions[id]
	if !ok {
		return State{}, ErrNoSession
	}
	fn(s.cursor)
	s.lastSeen = r.now()

	st := r.stateLocked(id)
	if !s.cursor.IsOpen() {
		// Escape closed the cursor; drop the session with it.
		delete(r.sessions, id)
	}
	return st, nil
}

// reapLocked closes and drops sessions idle past the TTL. Closing through
// the cursor keeps the scroll-release guarantee for abandoned sessions.
func (r *Registry) reapLocked() {
	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			s.cursor.Close()
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) stateLocked(id string) State {
	s := r.sessions[id]
	st := State{
		SessionID:    id,
		Open:         s.cursor.IsOpen(),
		Length:       s.cursor.Len(),
		HasPrev:      s.cursor.HasPrev(),
		HasNext:      s.cursor.HasNext(),
		ScrollLocked: s.scroll.locked,
	}
	if pos, ok := s.cursor.Position(); ok {
		st.Position = pos
	}
	if rec, ok := s.cursor.Current(); ok {
		st.Record = &rec
	}
	return st
}
