package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StubImageStore is an in-memory image store for development and tests.
// Uploaded payloads are kept in a map keyed by the returned URL.
type StubImageStore struct {
	mu      sync.Mutex
	BaseURL string
	Objects map[string]string
	Deleted []string
}

// NewStubImageStore creates a new StubImageStore
func NewStubImageStore() *StubImageStore {
	return &StubImageStore{
		BaseURL: "https://images.invalid",
		Objects: make(map[string]string),
	}
}

// UploadDataURI records the payload and returns a synthetic URL
func (s *StubImageStore) UploadDataURI(ctx context.Context, dataURI, folder string) (string, error) {
	if _, _, err := parseDataURI(dataURI); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	url := s.BaseURL + "/" + folder + "/" + uuid.New().String()
	s.Objects[url] = dataURI
	return url, nil
}

// Delete removes a recorded object and remembers the deletion
func (s *StubImageStore) Delete(ctx context.Context, imageURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.Objects, imageURL)
	s.Deleted = append(s.Deleted, imageURL)
	return nil
}
