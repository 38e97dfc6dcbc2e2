package memory

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/nglmq/chi-checksum/internal/storage"
	"sync"
)

// Storage keeps batches in process memory. It is used when no database is
// configured.
type Storage struct {
	mu      sync.RWMutex
	batches map[uuid.UUID]storage.Batch
}

func New() *Storage {
	return &Storage{batches: make(map[uuid.UUID]storage.Batch)}
}

func (s *Storage) SaveBatch(ctx context.Context, batch storage.Batch) error {
	if err := batch.Check(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[batch.ID]; ok {
		return fmt.Errorf("%s: %w", batch.ID, storage.ErrBatchAlreadyExists)
	}

	s.batches[batch.ID] = batch
	return nil
}

func (s *Storage) GetBatch(ctx context.Context, id uuid.UUID) (storage.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.batches[id]
	if !ok {
		return storage.Batch{}, storage.ErrBatchNotFound
	}

	return batch, nil
}
