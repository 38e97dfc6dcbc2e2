package storage

import (
	"errors"
	"github.com/google/uuid"
	"time"
)

var (
	ErrBatchNotFound      = errors.New("batch not found")
	ErrBatchAlreadyExists = errors.New("batch already exists")
	ErrLengthMismatch     = errors.New("identifiers and results differ in length")
)

type Batch struct {
	ID          uuid.UUID `json:"batch_id" db:"id"`
	Subject     string    `json:"subject,omitempty" db:"subject"`
	Identifiers []*string `json:"identifiers"`
	Results     []*bool   `json:"results"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (b Batch) ValidCount() int {
	var n int
	for _, r := range b.Results {
		if r != nil && *r {
			n++
		}
	}
	return n
}

func (b Batch) Check() error {
	if len(b.Identifiers) != len(b.Results) {
		return ErrLengthMismatch
	}
	return nil
}
