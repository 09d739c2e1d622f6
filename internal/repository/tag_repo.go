package repository

import (
	"context"
	"database/sql"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// tagRepo is the concrete implementation of TagRepository
type tagRepo struct {
	db *database.DB
}

// NewTagRepo creates a new tag repository
func NewTagRepo(db *database.DB) TagRepository {
	return &tagRepo{db: db}
}

// List retrieves all tags ordered by name
func (r *tagRepo) List(ctx context.Context) ([]models.Tag, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM article_tags ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetByID retrieves a tag by ID
func (r *tagRepo) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM article_tags WHERE id = $1
	`
	var t models.Tag
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new tag
func (r *tagRepo) Create(ctx context.Context, tag *models.Tag) error {
	query := `
		INSERT INTO article_tags (id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, tag.ID, tag.Name, tag.Slug, tag.CreatedAt)
	return err
}

// Update overwrites a tag's name and slug
func (r *tagRepo) Update(ctx context.Context, tag *models.Tag) error {
	query := `
		UPDATE article_tags SET name = $2, slug = $3 WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, tag.ID, tag.Name, tag.Slug)
	return err
}

// Delete removes a tag and every relation row referencing it. Both
// statements run inside one transaction so no dangling relation survives
// a partial failure.
func (r *tagRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM article_tag_relations WHERE tag_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM article_tags WHERE id = $1", id); err != nil {
		return err
	}
	return tx.Commit()
}

// RelationCount returns the number of relation rows referencing a tag
func (r *tagRepo) RelationCount(ctx context.Context, tagID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM article_tag_relations WHERE tag_id = $1", tagID,
	).Scan(&count)
	return count, err
}

// Count returns the total number of tags
func (r *tagRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM article_tags").Scan(&count)
	return count, err
}
