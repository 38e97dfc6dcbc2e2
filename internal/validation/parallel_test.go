package validation

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func generate(n int) []string {
	identifiers := make([]string, n)
	for i := range identifiers {
		identifiers[i] = fmt.Sprintf("%010d", i*7919)
	}
	return identifiers
}

func TestValidateBatchParallelMatchesSequential(t *testing.T) {
	identifiers := generate(1000)
	want := ValidateBatch(identifiers)

	for _, workers := range []int{0, 1, 3, 8, 2000} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, err := ValidateBatchParallel(context.Background(), identifiers, workers)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestValidateBatchParallelEmpty(t *testing.T) {
	got, err := ValidateBatchParallel(context.Background(), nil, 4)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestValidateBatchParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ValidateBatchParallel(ctx, generate(100), 4)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
