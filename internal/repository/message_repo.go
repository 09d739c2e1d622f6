package repository

import (
	"context"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// messageRepo is the concrete implementation of MessageRepository
type messageRepo struct {
	db *database.DB
}

// NewMessageRepo creates a new message repository
func NewMessageRepo(db *database.DB) MessageRepository {
	return &messageRepo{db: db}
}

// Create inserts a contact message
func (r *messageRepo) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		message.ID, message.Name, message.Email, message.Message, message.CreatedAt,
	)
	return err
}

// Count returns the total number of messages
func (r *messageRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&count)
	return count, err
}
