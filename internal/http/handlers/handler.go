package handlers

import (
	"taskmanager/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB    *pgxpool.Pool
	Tasks *repository.TaskRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:    db,
		Tasks: repository.NewTaskRepository(db),
	}
}
