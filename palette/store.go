package palette

// Store is the persistence port for history state. Backends are expected to
// be best-effort: callers treat read failures as "no data" and never let a
// write failure block command execution.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// MemoryStore is an in-process Store for tests and ephemeral sessions. Not
// safe for concurrent use; the palette runs on a single event loop.
type MemoryStore struct {
	m map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.m[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.m, key)
	return nil
}
