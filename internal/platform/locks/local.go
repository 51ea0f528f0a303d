package locks

import (
	"context"
	"sync"
)

// LocalTable is an in-process lock table. Keys exist in the map only while
// held, so the table does not grow with the number of distinct keys seen.
type LocalTable struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalTable() *LocalTable {
	return &LocalTable{held: make(map[string]struct{})}
}

func (t *LocalTable) TryAcquire(_ context.Context, key string) (Release, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.held[key]; busy {
		return noopRelease, false, nil
	}
	t.held[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.held, key)
			t.mu.Unlock()
		})
	}, true, nil
}

// Held reports whether key is currently held.
func (t *LocalTable) Held(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.held[key]
	return ok
}
