package checksum

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nglmq/chi-checksum/internal/auth"
	"github.com/nglmq/chi-checksum/internal/middleware/logger"
	"github.com/nglmq/chi-checksum/internal/storage"
	"github.com/nglmq/chi-checksum/internal/validation"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

type ValidateRequest struct {
	Identifiers []*string `json:"identifiers" validate:"required,min=1"`
}

type ValidateResponse struct {
	BatchID  uuid.UUID           `json:"batch_id"`
	Results  []*bool             `json:"results"`
	Statuses []validation.Status `json:"statuses,omitempty"`
}

type BatchSaver interface {
	SaveBatch(ctx context.Context, batch storage.Batch) error
}

type Observer interface {
	ObserveBatch(statuses []validation.Status)
}

const defaultMaxBodyBytes = 1 << 20

type Options struct {
	MaxBatchSize int
	MaxBodyBytes int64
	Workers      int
}

func ValidateHandle(batchSaver BatchSaver, observer Observer, opts Options) http.HandlerFunc {
	validate := validator.New()

	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var data ValidateRequest

		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			logger.Log.Info("invalid validate request", zap.Error(err))

			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := validate.Struct(data); err != nil {
			logger.Log.Info("invalid validation for batch", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if opts.MaxBatchSize > 0 && len(data.Identifiers) > opts.MaxBatchSize {
			http.Error(w, "batch exceeds "+strconv.Itoa(opts.MaxBatchSize)+" identifiers", http.StatusRequestEntityTooLarge)
			return
		}

		results, err := validateNullable(r.Context(), data.Identifiers, opts.Workers)
		if err != nil {
			logger.Log.Info("batch validation interrupted", zap.Error(err))
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		statuses := validation.CheckBatch(data.Identifiers)
		observer.ObserveBatch(statuses)

		batch := storage.Batch{
			ID:          uuid.New(),
			Subject:     auth.Subject(r.Context()),
			Identifiers: data.Identifiers,
			Results:     results,
			CreatedAt:   time.Now().UTC(),
		}

		if err := batchSaver.SaveBatch(r.Context(), batch); err != nil {
			if errors.Is(err, storage.ErrBatchAlreadyExists) {
				http.Error(w, "batch id collision, retry", http.StatusConflict)
				return
			}
			logger.Log.Error("failed to save batch", zap.Error(err))

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp := ValidateResponse{
			BatchID: batch.ID,
			Results: results,
		}
		if strict, _ := strconv.ParseBool(r.URL.Query().Get("strict")); strict {
			resp.Statuses = statuses
		}

		response, err := json.Marshal(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.Log.Debug("batch validated",
			zap.String("batch_id", batch.ID.String()),
			zap.Int("total", len(results)),
			zap.Int("valid", batch.ValidCount()),
		)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}

// validateNullable runs the present identifiers through the parallel
// validator and scatters the results back to their original positions.
func validateNullable(ctx context.Context, identifiers []*string, workers int) ([]*bool, error) {
	present := make([]string, 0, len(identifiers))
	positions := make([]int, 0, len(identifiers))

	for i, identifier := range identifiers {
		if identifier == nil {
			continue
		}
		present = append(present, *identifier)
		positions = append(positions, i)
	}

	valid, err := validation.ValidateBatchParallel(ctx, present, workers)
	if err != nil {
		return nil, err
	}

	results := make([]*bool, len(identifiers))
	for j, i := range positions {
		results[i] = &valid[j]
	}

	return results, nil
}
