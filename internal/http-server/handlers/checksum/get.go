package checksum

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nglmq/chi-checksum/internal/middleware/logger"
	"github.com/nglmq/chi-checksum/internal/storage"
	"go.uber.org/zap"
	"net/http"
)

type BatchGetter interface {
	GetBatch(ctx context.Context, id uuid.UUID) (storage.Batch, error)
}

func GetBatchHandle(batchGetter BatchGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "Invalid batch ID", http.StatusBadRequest)
			return
		}

		batch, err := batchGetter.GetBatch(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrBatchNotFound) {
				http.Error(w, "Batch not found", http.StatusNotFound)
				return
			}
			logger.Log.Error("failed to get batch", zap.Error(err))

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response, err := json.Marshal(batch)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(response)
	}
}
