package checksum

import (
	"encoding/json"
	"errors"
	"github.com/nglmq/chi-checksum/internal/validation"
	"io"
	"net/http"
)

const maxCheckBodyBytes = 1 << 10

type CheckResponse struct {
	Identifier string            `json:"identifier"`
	Valid      bool              `json:"valid"`
	Status     validation.Status `json:"status"`
}

func CheckHandle(observer Observer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCheckBodyBytes))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "Error reading request body", http.StatusBadRequest)
			return
		}
		identifier := string(body)
		if identifier == "" {
			http.Error(w, "No identifier provided", http.StatusBadRequest)
			return
		}

		resp := CheckResponse{
			Identifier: identifier,
			Valid:      validation.IsValid(identifier),
			Status:     validation.Check(identifier),
		}
		observer.ObserveBatch([]validation.Status{resp.Status})

		response, err := json.Marshal(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if resp.Status != validation.StatusValid {
			status = http.StatusUnprocessableEntity
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(response)
	}
}
