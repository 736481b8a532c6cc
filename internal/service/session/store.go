// Package session holds per-user outfit state for the lifetime of the
// process. State is created lazily on first access and never expires.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Rushabh-Runwal/Roblox-Outfit-Marketplace-Agents/internal/model/outfit"
)

// Session is the mutable per-user record: the current outfit, the last
// search parameters used per slot, and a per-slot rotation index for
// show-more cycling.
type Session struct {
	ID         string
	UserID     int64
	Outfit     map[outfit.Slot]outfit.Item
	LastParams map[outfit.Slot]outfit.SearchParams
	Rotation   map[outfit.Slot]int
	LastSlot   outfit.Slot
	CreatedAt  time.Time
}

// NewSession creates a fresh, empty session for the user. The store
// calls this lazily; tests build sessions with it directly.
func NewSession(userID int64) *Session {
	return &Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		Outfit:     make(map[outfit.Slot]outfit.Item),
		LastParams: make(map[outfit.Slot]outfit.SearchParams),
		Rotation:   make(map[outfit.Slot]int),
		CreatedAt:  time.Now().UTC(),
	}
}

// FilledSlots returns the currently filled slots in canonical order.
func (s *Session) FilledSlots() []outfit.Slot {
	var slots []outfit.Slot
	for _, slot := range outfit.AllSlots {
		if _, ok := s.Outfit[slot]; ok {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Items returns the full outfit snapshot in canonical slot order.
func (s *Session) Items() []outfit.Item {
	items := make([]outfit.Item, 0, len(s.Outfit))
	for _, slot := range outfit.AllSlots {
		if item, ok := s.Outfit[slot]; ok {
			items = append(items, item)
		}
	}
	return items
}

type entry struct {
	mu   sync.Mutex
	sess *Session
}

// Store is a keyed session store. Access to one user's session is
// serialized; different users never contend.
type Store struct {
	mu    sync.Mutex
	users map[int64]*entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[int64]*entry)}
}

func (s *Store) entryFor(userID int64) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.users[userID]
	if !ok {
		e = &entry{sess: NewSession(userID)}
		s.users[userID] = e
	}
	return e
}

// With runs fn with exclusive access to the user's session, creating it
// on first use. The whole read-modify-write of one chat exchange runs
// under this lock so concurrent requests for the same user cannot lose
// updates.
func (s *Store) With(userID int64, fn func(*Session)) {
	e := s.entryFor(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.sess)
}

// Len reports how many user sessions exist.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
