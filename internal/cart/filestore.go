package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore persists carts in a single JSON document on disk, one entry per
// cart key. It is the server-side analog of the original storefront's
// localStorage persistence.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context, key string) ([]Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, err := s.read()
	if err != nil {
		return nil, err
	}
	lines, ok := carts[key]
	if !ok {
		return nil, ErrNotFound
	}
	return lines, nil
}

func (s *FileStore) Save(ctx context.Context, key string, lines []Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, err := s.read()
	if err != nil {
		// Malformed file: start over rather than refuse every future save.
		carts = make(map[string][]Line)
	}
	if lines == nil {
		lines = []Line{}
	}
	carts[key] = lines
	return s.write(carts)
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, err := s.read()
	if err != nil {
		carts = make(map[string][]Line)
	}
	delete(carts, key)
	return s.write(carts)
}

func (s *FileStore) read() (map[string][]Line, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return make(map[string][]Line), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	carts := make(map[string][]Line)
	if err := json.Unmarshal(data, &carts); err != nil {
		return nil, fmt.Errorf("decode cart file: %w", err)
	}
	return carts, nil
}

func (s *FileStore) write(carts map[string][]Line) error {
	data, err := json.Marshal(carts)
	if err != nil {
		return fmt.Errorf("encode carts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
