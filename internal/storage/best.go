package storage

import "sync"

// DefaultBestKey identifies the snake best score in the best_scores table.
const DefaultBestKey = "snake-best"

// BestStore exposes one best-score key of a Store as the engine's persistent
// store. With a nil Store it keeps the value in memory, so a game whose
// database could not be opened still works for the session.
type BestStore struct {
	store *Store
	key   string

	mu     sync.Mutex
	memory int
}

// NewBestStore returns a BestStore for key. An empty key uses DefaultBestKey.
func NewBestStore(store *Store, key string) *BestStore {
	if key == "" {
		key = DefaultBestKey
	}
	return &BestStore{store: store, key: key}
}

// GetBest returns the stored best score.
func (b *BestStore) GetBest() (int, error) {
	if b.store == nil {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.memory, nil
	}
	return b.store.Best(b.key)
}

// SetBest stores best if it beats the stored value.
func (b *BestStore) SetBest(best int) error {
	if b.store == nil {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.memory = max(b.memory, best)
		return nil
	}
	return b.store.SetBest(b.key, best)
}

// Key returns the identifier the best score is stored under.
func (b *BestStore) Key() string {
	return b.key
}
