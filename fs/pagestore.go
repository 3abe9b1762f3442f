package fs

import (
	"context"
	"sync"

	"github.com/fwojciec/prodspan"
)

// Ensure FileStore implements prodspan.PageStore at compile time.
var _ prodspan.PageStore = (*FileStore)(nil)

// FileStore implements prodspan.PageStore with atomic update semantics.
// Saved pages are staged in memory and written together as a JSON array of
// text records on Commit. An existing file is only replaced on Commit.
type FileStore struct {
	path string

	mu      sync.Mutex
	records []prodspan.TextRecord
}

// NewFileStore creates a new FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:    path,
		records: []prodspan.TextRecord{},
	}
}

// Save stages a page. Pages are written in the order they were saved.
func (s *FileStore) Save(ctx context.Context, page *prodspan.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, page.Record())
	return nil
}

// Len returns the number of staged pages.
func (s *FileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Commit writes the staged pages to the store's path.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return WriteJSON(s.path, s.records)
}

// Abort discards the staged pages and leaves the target file untouched.
func (s *FileStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = []prodspan.TextRecord{}
	return nil
}
