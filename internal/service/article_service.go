package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/repository"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/portfolio-content-api/pkg/slug"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articleRepo repository.ArticleRepository
	log         zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articleRepo repository.ArticleRepository, log zerolog.Logger) *articleService {
	return &articleService{
		articleRepo: articleRepo,
		log:         log.With().Str("service", "article").Logger(),
	}
}

// ListPublished is the public list pipeline: published only, newest first,
// optionally narrowed to one category.
func (s *articleService) ListPublished(ctx context.Context, categoryID string) ([]models.ArticleSummary, error) {
	return s.articleRepo.ListPublished(ctx, categoryID)
}

// GetBySlug fetches a published article and records one view. The view
// write is a read-modify-write using the count this fetch just read; see
// ArticleRepository.RecordView for the accepted lost-update window. The
// returned detail carries the pre-increment count, matching what the
// reader was shown. A failed view write is logged and swallowed; the
// counter is advisory and must not break the read path.
func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	detail, err := s.articleRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}

	if err := s.articleRepo.RecordView(ctx, detail.ID, detail.ViewCount); err != nil {
		s.log.Warn().Err(err).Str("article_id", detail.ID).Msg("Failed to record view")
	}

	return detail, nil
}

func (s *articleService) List(ctx context.Context) ([]models.Article, error) {
	return s.articleRepo.List(ctx)
}

func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// Save validates and then creates (empty id) or updates an article. The
// slug is derived from the title only when creating with an empty slug
// field; editing never regenerates it. Publishing a draft stamps
// published_at once; the reverse transition is rejected because no
// unpublish flow exists.
func (s *articleService) Save(ctx context.Context, id string, form *validation.ArticleInput) (*models.Article, error) {
	if id == "" && form.Slug == "" {
		form.Slug = slug.Make(form.Title)
	}
	if verr := validation.ValidateArticle(form); verr != nil {
		return nil, verr
	}

	status := models.ArticleStatus(form.Status)

	if id == "" {
		article := &models.Article{
			ID:               uuid.NewString(),
			Title:            form.Title,
			Slug:             form.Slug,
			Summary:          form.Summary,
			Content:          form.Content,
			FeaturedImageURL: form.FeaturedImageURL,
			Status:           status,
			CategoryID:       form.CategoryID,
			ViewCount:        0,
			CreatedAt:        time.Now(),
			TagIDs:           form.TagIDs,
		}
		if status == models.StatusPublished {
			now := time.Now()
			article.PublishedAt = &now
		}
		if err := s.articleRepo.Create(ctx, article); err != nil {
			return nil, err
		}
		s.log.Info().Str("article_id", article.ID).Str("slug", article.Slug).
			Str("status", string(status)).Msg("Article created")
		return article, nil
	}

	existing, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &validation.Error{Message: "Article not found"}
	}
	if existing.Status == models.StatusPublished && status == models.StatusDraft {
		return nil, &validation.Error{Field: "status", Message: "Published articles cannot return to draft"}
	}

	article := &models.Article{
		ID:               id,
		Title:            form.Title,
		Slug:             form.Slug,
		Summary:          form.Summary,
		Content:          form.Content,
		FeaturedImageURL: form.FeaturedImageURL,
		Status:           status,
		CategoryID:       form.CategoryID,
		ViewCount:        existing.ViewCount,
		PublishedAt:      existing.PublishedAt,
		CreatedAt:        existing.CreatedAt,
		TagIDs:           form.TagIDs,
	}
	if existing.Status == models.StatusDraft && status == models.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}
	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	s.log.Info().Str("article_id", id).Str("slug", article.Slug).
		Str("status", string(status)).Msg("Article updated")
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

func (s *articleService) Count(ctx context.Context) (int, error) {
	return s.articleRepo.Count(ctx)
}
