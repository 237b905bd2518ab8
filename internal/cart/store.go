package cart

import "sync"

// Store holds every active cart in process memory, keyed by user id. Carts are
// never written to the database: a cart's lifetime is one browsing session and
// it is destroyed by checkout or logout. The mutex is there because two HTTP
// requests from the same browser can land concurrently.
type Store struct {
	mu    sync.Mutex
	carts map[int][]Item
}

func NewStore() *Store {
	return &Store{carts: make(map[int][]Item)}
}

// Get returns a copy of the user's cart lines.
func (s *Store) Get(userID int) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.carts[userID]))
	copy(items, s.carts[userID])
	return items
}

// Save replaces the user's cart with the given lines.
func (s *Store) Save(userID int, items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		delete(s.carts, userID)
		return
	}

	saved := make([]Item, len(items))
	copy(saved, items)
	s.carts[userID] = saved
}

// Clear drops the user's cart entirely.
func (s *Store) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
}
