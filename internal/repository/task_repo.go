package repository

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"taskmanager/internal/db"
	"taskmanager/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Validation failures, rejected before any SQL is issued.
var (
	ErrTitleRequired = errors.New("task title is required")
	ErrTitleTooLong  = errors.New("task title exceeds 255 characters")
)

const maxTitleLen = 255

// timestamps leave the database pre-formatted
const createdAtFormat = `TO_CHAR(created_at, 'YYYY-MM-DD HH24:MI:SS')`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return ErrTitleTooLong
	}
	return nil
}

// Add inserts one task, created_at defaulted by the server. The insert runs
// in its own transaction; failures are reported, never retried.
func (r *TaskRepository) Add(ctx context.Context, title, description string) (*domain.Task, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, db.AcquireTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	defer tx.Rollback(ctx)

	t := &domain.Task{Title: title, Description: description}
	err = tx.QueryRow(ctx,
		`INSERT INTO tasks (title, description) VALUES ($1, $2) RETURNING id, `+createdAtFormat,
		title, description).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return t, nil
}

// List returns every task, most recent first. Zero rows is an empty slice,
// not an error.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, db.AcquireTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), `+createdAtFormat+` FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		res = append(res, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return res, nil
}

// Delete removes the task with the given id. A missing id is a no-op, still
// success; the bool reports whether a row was actually removed.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, db.AcquireTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
