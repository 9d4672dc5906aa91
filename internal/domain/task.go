package domain

// Task is immutable once stored: the only mutation is deletion by ID.
// CreatedAt is rendered by the database as "YYYY-MM-DD HH:MM:SS".
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}
