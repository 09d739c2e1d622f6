package repository

import (
	"context"

	"github.com/portfolio-content-api/internal/database"
	"github.com/portfolio-content-api/internal/models"
)

// CategoryRepository defines the typed store operations for categories.
// Each call is a single round trip; a failed mutation leaves nothing behind
// for the caller to clean up.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TagRepository defines the typed store operations for tags. Delete removes
// the tag and every relation row referencing it in one transaction.
type TagRepository interface {
	List(ctx context.Context) ([]models.Tag, error)
	GetByID(ctx context.Context, id string) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id string) error
	RelationCount(ctx context.Context, tagID string) (int, error)
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines article reads for both pipelines plus admin
// mutations. ListPublished and GetPublishedBySlug always constrain
// status = published; an unpublished article is indistinguishable from a
// missing one on the public side.
type ArticleRepository interface {
	ListPublished(ctx context.Context, categoryID string) ([]models.ArticleSummary, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error)

	// RecordView writes view_count = currentCount + 1 as a literal value,
	// the second half of a read-modify-write spanning two round trips.
	// Isolated here so it can be swapped for an atomic server-side
	// increment without touching callers.
	RecordView(ctx context.Context, id string, currentCount int) error

	List(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, article *models.Article) error
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// MessageRepository defines the write-only contact message store
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Category CategoryRepository
	Tag      TagRepository
	Article  ArticleRepository
	Message  MessageRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Category: NewCategoryRepo(db),
		Tag:      NewTagRepo(db),
		Article:  NewArticleRepo(db),
		Message:  NewMessageRepo(db),
	}
}
