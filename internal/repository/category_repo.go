package repository

import (
	"context"
	"database/sql"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// categoryRepo is the concrete implementation of CategoryRepository
type categoryRepo struct {
	db *database.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *database.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// List retrieves all categories ordered by name
func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM article_categories ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID retrieves a category by ID
func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM article_categories WHERE id = $1
	`
	var c models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new category
func (r *categoryRepo) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO article_categories (id, name, slug, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.CreatedAt,
	)
	return err
}

// Update overwrites a category's name and slug
func (r *categoryRepo) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE article_categories SET name = $2, slug = $3 WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Slug)
	return err
}

// Delete removes a category. Articles referencing it are left to the
// datastore's referential policy (category_id is set NULL by the schema).
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM article_categories WHERE id = $1", id)
	return err
}

// Count returns the total number of categories
func (r *categoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM article_categories").Scan(&count)
	return count, err
}
