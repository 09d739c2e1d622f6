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

// tagService is the concrete implementation of TagService
type tagService struct {
	tagRepo repository.TagRepository
	log     zerolog.Logger
}

// newTagService creates a new TagService
func newTagService(tagRepo repository.TagRepository, log zerolog.Logger) *tagService {
	return &tagService{
		tagRepo: tagRepo,
		log:     log.With().Str("service", "tag").Logger(),
	}
}

func (s *tagService) List(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *tagService) Get(ctx context.Context, id string) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

// Save validates the form and then creates (empty id) or updates a tag.
// On create an empty slug field is filled from the name via the slug
// generator before validation, so a name with no usable characters still
// fails with a slug error instead of persisting an empty slug. On update
// the stored slug is never regenerated; whatever the form carries is what
// gets written, keeping URLs stable across renames.
func (s *tagService) Save(ctx context.Context, id string, form *validation.TagInput) (*models.Tag, error) {
	if id == "" && form.Slug == "" {
		form.Slug = slug.Make(form.Name)
	}
	if verr := validation.ValidateTag(form); verr != nil {
		return nil, verr
	}

	if id == "" {
		tag := &models.Tag{
			ID:        uuid.NewString(),
			Name:      form.Name,
			Slug:      form.Slug,
			CreatedAt: time.Now(),
		}
		if err := s.tagRepo.Create(ctx, tag); err != nil {
			return nil, err
		}
		s.log.Info().Str("tag_id", tag.ID).Str("slug", tag.Slug).Msg("Tag created")
		return tag, nil
	}

	tag := &models.Tag{ID: id, Name: form.Name, Slug: form.Slug}
	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, err
	}
	s.log.Info().Str("tag_id", id).Str("slug", tag.Slug).Msg("Tag updated")
	return tag, nil
}

// Delete removes the tag from all articles and then the tag itself
func (s *tagService) Delete(ctx context.Context, id string) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("tag_id", id).Msg("Tag deleted with its relations")
	return nil
}

func (s *tagService) Count(ctx context.Context) (int, error) {
	return s.tagRepo.Count(ctx)
}

// categoryService is the concrete implementation of CategoryService
type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          zerolog.Logger
}

// newCategoryService creates a new CategoryService
func newCategoryService(categoryRepo repository.CategoryRepository, log zerolog.Logger) *categoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With().Str("service", "category").Logger(),
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// Save mirrors tag Save: auto-slug on create only, validation before any
// mutation, update writes the form slug untouched.
func (s *categoryService) Save(ctx context.Context, id string, form *validation.CategoryInput) (*models.Category, error) {
	if id == "" && form.Slug == "" {
		form.Slug = slug.Make(form.Name)
	}
	if verr := validation.ValidateCategory(form); verr != nil {
		return nil, verr
	}

	if id == "" {
		category := &models.Category{
			ID:        uuid.NewString(),
			Name:      form.Name,
			Slug:      form.Slug,
			CreatedAt: time.Now(),
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, err
		}
		s.log.Info().Str("category_id", category.ID).Str("slug", category.Slug).Msg("Category created")
		return category, nil
	}

	category := &models.Category{ID: id, Name: form.Name, Slug: form.Slug}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	s.log.Info().Str("category_id", id).Str("slug", category.Slug).Msg("Category updated")
	return category, nil
}

// Delete removes a category. Whether articles referencing it are detached
// is the datastore's referential policy, not enforced here.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("Category deleted")
	return nil
}

func (s *categoryService) Count(ctx context.Context) (int, error) {
	return s.categoryRepo.Count(ctx)
}
