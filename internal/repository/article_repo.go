package repository

import (
	"context"
	"database/sql"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// ListPublished retrieves published articles newest first, each joined with
// its category's name and slug when one is set. An empty categoryID means
// unfiltered.
func (r *articleRepo) ListPublished(ctx context.Context, categoryID string) ([]models.ArticleSummary, error) {
	query := `
		SELECT a.id, a.title, a.slug, a.summary, a.featured_image_url,
		       a.published_at, a.view_count, c.name, c.slug
		FROM articles a
		LEFT JOIN article_categories c ON c.id = a.category_id
		WHERE a.status = 'published'
	`
	args := []interface{}{}
	if categoryID != "" {
		query += " AND a.category_id = $1"
		args = append(args, categoryID)
	}
	query += " ORDER BY a.published_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.ArticleSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}
	return summaries, rows.Err()
}

// GetPublishedBySlug retrieves a published article by slug together with its
// tags. Returns nil for a slug that does not exist or belongs to a draft;
// the two cases are deliberately indistinguishable here.
func (r *articleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	query := `
		SELECT a.id, a.title, a.slug, a.summary, a.featured_image_url,
		       a.published_at, a.view_count, c.name, c.slug, a.content
		FROM articles a
		LEFT JOIN article_categories c ON c.id = a.category_id
		WHERE a.slug = $1 AND a.status = 'published'
	`
	var detail models.ArticleDetail
	var imageURL, catName, catSlug sql.NullString

	err := r.db.QueryRowContext(ctx, query, slug).Scan(
		&detail.ID, &detail.Title, &detail.Slug, &detail.Summary, &imageURL,
		&detail.PublishedAt, &detail.ViewCount, &catName, &catSlug, &detail.Content,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	detail.FeaturedImageURL = imageURL.String
	if catName.Valid {
		detail.Category = &models.CategoryRef{Name: catName.String, Slug: catSlug.String}
	}

	tags, err := r.articleTags(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	detail.Tags = tags

	return &detail, nil
}

// RecordView writes the caller's incremented count back as a literal value.
// Two viewers who both read count N will both write N+1 and one view is
// lost; view counts are advisory, not billing-grade. Swapping the SET
// clause for view_count = view_count + 1 makes this atomic without
// touching any caller.
func (r *articleRepo) RecordView(ctx context.Context, id string, currentCount int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE articles SET view_count = $2 WHERE id = $1",
		id, currentCount+1,
	)
	return err
}

// List retrieves every article regardless of status, newest first (admin)
func (r *articleRepo) List(ctx context.Context) ([]models.Article, error) {
	query := `
		SELECT id, title, slug, summary, content, featured_image_url,
		       status, category_id, view_count, published_at, created_at
		FROM articles ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		var imageURL, categoryID sql.NullString
		err := rows.Scan(
			&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content, &imageURL,
			&a.Status, &categoryID, &a.ViewCount, &a.PublishedAt, &a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		a.FeaturedImageURL = imageURL.String
		a.CategoryID = categoryID.String
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article by ID with its tag relation set loaded
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `
		SELECT id, title, slug, summary, content, featured_image_url,
		       status, category_id, view_count, published_at, created_at
		FROM articles WHERE id = $1
	`
	var a models.Article
	var imageURL, categoryID sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content, &imageURL,
		&a.Status, &categoryID, &a.ViewCount, &a.PublishedAt, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.FeaturedImageURL = imageURL.String
	a.CategoryID = categoryID.String

	rows, err := r.db.QueryContext(ctx,
		"SELECT tag_id FROM article_tag_relations WHERE article_id = $1", id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tagID string
		if err := rows.Scan(&tagID); err != nil {
			return nil, err
		}
		a.TagIDs = append(a.TagIDs, tagID)
	}
	return &a, rows.Err()
}

// Create inserts a new article and its tag relations in one transaction
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO articles (id, title, slug, summary, content, featured_image_url,
		                      status, category_id, view_count, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = tx.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.Summary, article.Content,
		nullString(article.FeaturedImageURL), article.Status, nullString(article.CategoryID),
		article.ViewCount, article.PublishedAt, article.CreatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertRelations(ctx, tx, article.ID, article.TagIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// Update overwrites an article's editable columns and replaces its tag
// relation set. view_count is never written here; that column belongs to
// RecordView alone.
func (r *articleRepo) Update(ctx context.Context, article *models.Article) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE articles
		SET title = $2, slug = $3, summary = $4, content = $5,
		    featured_image_url = $6, status = $7, category_id = $8, published_at = $9
		WHERE id = $1
	`
	_, err = tx.ExecContext(ctx, query,
		article.ID, article.Title, article.Slug, article.Summary, article.Content,
		nullString(article.FeaturedImageURL), article.Status, nullString(article.CategoryID),
		article.PublishedAt,
	)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM article_tag_relations WHERE article_id = $1", article.ID,
	); err != nil {
		return err
	}
	if err := insertRelations(ctx, tx, article.ID, article.TagIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes an article; its relation rows cascade at the datastore
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = $1", id)
	return err
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// articleTags loads the joined tag metadata for a single article
func (r *articleRepo) articleTags(ctx context.Context, articleID string) ([]models.TagRef, error) {
	query := `
		SELECT t.name, t.slug
		FROM article_tags t
		JOIN article_tag_relations rel ON rel.tag_id = t.id
		WHERE rel.article_id = $1
		ORDER BY t.name
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []models.TagRef
	for rows.Next() {
		var t models.TagRef
		if err := rows.Scan(&t.Name, &t.Slug); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// insertRelations writes the relation rows for an article's tag set
func insertRelations(ctx context.Context, tx *sql.Tx, articleID string, tagIDs []string) error {
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO article_tag_relations (article_id, tag_id) VALUES ($1, $2)",
			articleID, tagID,
		); err != nil {
			return err
		}
	}
	return nil
}

// scanSummary scans one joined list row into an ArticleSummary
func scanSummary(rows *sql.Rows) (*models.ArticleSummary, error) {
	var s models.ArticleSummary
	var imageURL, catName, catSlug sql.NullString

	err := rows.Scan(
		&s.ID, &s.Title, &s.Slug, &s.Summary, &imageURL,
		&s.PublishedAt, &s.ViewCount, &catName, &catSlug,
	)
	if err != nil {
		return nil, err
	}
	s.FeaturedImageURL = imageURL.String
	if catName.Valid {
		s.Category = &models.CategoryRef{Name: catName.String, Slug: catSlug.String}
	}
	return &s, nil
}

// nullString maps the empty string to SQL NULL for nullable text columns
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
