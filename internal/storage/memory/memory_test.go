package memory

import (
	"context"
	"github.com/google/uuid"
	"github.com/nglmq/chi-checksum/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestSaveAndGetBatch(t *testing.T) {
	s := New()
	ctx := context.Background()

	id, valid := "2103850262", true
	batch := storage.Batch{
		ID:          uuid.New(),
		Identifiers: []*string{&id, nil},
		Results:     []*bool{&valid, nil},
		CreatedAt:   time.Now(),
	}

	require.NoError(t, s.SaveBatch(ctx, batch))

	got, err := s.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch, got)
	assert.Equal(t, 1, got.ValidCount())

	assert.ErrorIs(t, s.SaveBatch(ctx, batch), storage.ErrBatchAlreadyExists)
}

func TestGetBatchNotFound(t *testing.T) {
	_, err := New().GetBatch(context.Background(), uuid.New())

	assert.ErrorIs(t, err, storage.ErrBatchNotFound)
}

func TestSaveBatchLengthMismatch(t *testing.T) {
	id := "2103850262"
	err := New().SaveBatch(context.Background(), storage.Batch{
		ID:          uuid.New(),
		Identifiers: []*string{&id},
	})

	assert.ErrorIs(t, err, storage.ErrLengthMismatch)
}
