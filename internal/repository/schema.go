package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSchema means the tasks table could not be created. Fatal at startup.
var ErrSchema = errors.New("schema initialization failed")

const createTasksTable = `CREATE TABLE IF NOT EXISTS tasks (
    id SERIAL PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    description TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// EnsureSchema creates the tasks table if it does not exist. Idempotent:
// existence is the only check, the shape of a pre-existing table is not
// validated.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createTasksTable); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return nil
}
