package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/nglmq/chi-checksum/internal/storage"
)

const uniqueViolation = "23505"

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS batches(
		id UUID PRIMARY KEY,
		subject TEXT NOT NULL DEFAULT '',
		total INTEGER NOT NULL,
		valid_count INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create batches table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS batch_items(
		batch_id UUID NOT NULL,
		position INTEGER NOT NULL,
		identifier BYTEA,
		valid BOOLEAN,
		PRIMARY KEY (batch_id, position),
		FOREIGN KEY (batch_id) REFERENCES batches (id) ON DELETE CASCADE);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch_items table: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) SaveBatch(ctx context.Context, batch storage.Batch) error {
	if err := batch.Check(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO batches(id, subject, total, valid_count, created_at) VALUES ($1, $2, $3, $4, $5)`,
		batch.ID, batch.Subject, len(batch.Identifiers), batch.ValidCount(), batch.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w", batch.ID, storage.ErrBatchAlreadyExists)
		}
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO batch_items(batch_id, position, identifier, valid) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for i := range batch.Identifiers {
		var identifier []byte
		if batch.Identifiers[i] != nil {
			identifier = append([]byte{}, *batch.Identifiers[i]...)
		}

		var valid sql.NullBool
		if batch.Results[i] != nil {
			valid = sql.NullBool{Bool: *batch.Results[i], Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, batch.ID, i, identifier, valid); err != nil {
			return fmt.Errorf("failed to insert batch item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func (s *Storage) GetBatch(ctx context.Context, id uuid.UUID) (storage.Batch, error) {
	batch := storage.Batch{ID: id}

	err := s.db.QueryRowContext(ctx, `SELECT subject, created_at FROM batches WHERE id = $1`, id).
		Scan(&batch.Subject, &batch.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Batch{}, storage.ErrBatchNotFound
		}
		return storage.Batch{}, fmt.Errorf("failed to query batch: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT identifier, identifier IS NULL, valid FROM batch_items WHERE batch_id = $1 ORDER BY position ASC`, id)
	if err != nil {
		return storage.Batch{}, fmt.Errorf("failed to query batch items: %w", err)
	}
	defer rows.Close()

	batch.Identifiers = []*string{}
	batch.Results = []*bool{}

	for rows.Next() {
		var identifier []byte
		var missing bool
		var valid sql.NullBool

		if err := rows.Scan(&identifier, &missing, &valid); err != nil {
			return storage.Batch{}, fmt.Errorf("failed to scan batch item: %w", err)
		}

		var idPtr *string
		if !missing {
			str := string(identifier)
			idPtr = &str
		}
		var validPtr *bool
		if valid.Valid {
			validPtr = &valid.Bool
		}

		batch.Identifiers = append(batch.Identifiers, idPtr)
		batch.Results = append(batch.Results, validPtr)
	}

	if err := rows.Err(); err != nil {
		return storage.Batch{}, fmt.Errorf("error occurred during row iteration: %w", err)
	}

	return batch, nil
}
