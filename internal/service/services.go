package service

import (
	"context"

	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// CategoryService defines category operations for the admin console and the
// public category list. Save validates before any mutation reaches the
// store; an empty id means create.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Save(ctx context.Context, id string, form *validation.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// TagService defines tag operations. Delete cascades the tag's relations.
type TagService interface {
	List(ctx context.Context) ([]models.Tag, error)
	Get(ctx context.Context, id string) (*models.Tag, error)
	Save(ctx context.Context, id string, form *validation.TagInput) (*models.Tag, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// ArticleService defines the publishing read pipeline, the view-count
// updater, and admin article mutations.
type ArticleService interface {
	// ListPublished returns published articles newest first; categoryID ""
	// means unfiltered.
	ListPublished(ctx context.Context, categoryID string) ([]models.ArticleSummary, error)

	// GetBySlug returns a published article by slug, or nil when the slug
	// is missing or unpublished. A successful fetch records exactly one
	// view.
	GetBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error)

	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Save(ctx context.Context, id string, form *validation.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// MessageService accepts contact form submissions
type MessageService interface {
	Submit(ctx context.Context, form *validation.MessageInput) (*models.Message, error)
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Category CategoryService
	Tag      TagService
	Article  ArticleService
	Message  MessageService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Category: newCategoryService(repos.Category, log),
		Tag:      newTagService(repos.Tag, log),
		Article:  newArticleService(repos.Article, log),
		Message:  newMessageService(repos.Message, log),
	}
}
