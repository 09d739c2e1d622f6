package mocks

import (
	"context"
	"sort"

	"github.com/portfolio-content-api/internal/models"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories  map[string]*models.Category
	InsertError error
	UpdateError error
	DeleteError error
	ListError   error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[string]*models.Category),
	}
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	categories := make([]models.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return m.Categories[id], nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if existing, ok := m.Categories[category.ID]; ok {
		existing.Name = category.Name
		existing.Slug = category.Slug
	}
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Categories, id)
	return nil
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.Categories), nil
}

// MockTagRepository is a mock implementation of TagRepository. Relations
// lives here so tests can verify the delete cascade leaves nothing behind.
type MockTagRepository struct {
	Tags        map[string]*models.Tag
	Relations   []models.TagRelation
	InsertError error
	UpdateError error
	DeleteError error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{
		Tags: make(map[string]*models.Tag),
	}
}

func (m *MockTagRepository) List(ctx context.Context) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(m.Tags))
	for _, t := range m.Tags {
		tags = append(tags, *t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	return m.Tags[id], nil
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if existing, ok := m.Tags[tag.ID]; ok {
		existing.Name = tag.Name
		existing.Slug = tag.Slug
	}
	return nil
}

// Delete removes the tag together with every relation referencing it,
// mirroring the transactional cascade of the real repository.
func (m *MockTagRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Tags, id)
	kept := m.Relations[:0]
	for _, rel := range m.Relations {
		if rel.TagID != id {
			kept = append(kept, rel)
		}
	}
	m.Relations = kept
	return nil
}

func (m *MockTagRepository) RelationCount(ctx context.Context, tagID string) (int, error) {
	count := 0
	for _, rel := range m.Relations {
		if rel.TagID == tagID {
			count++
		}
	}
	return count, nil
}

func (m *MockTagRepository) Count(ctx context.Context) (int, error) {
	return len(m.Tags), nil
}

// AddRelation attaches a tag to an article for cascade tests
func (m *MockTagRepository) AddRelation(articleID, tagID string) {
	m.Relations = append(m.Relations, models.TagRelation{ArticleID: articleID, TagID: tagID})
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles      map[string]*models.Article
	CategoryRefs  map[string]models.CategoryRef // category_id -> joined metadata
	TagsByArticle map[string][]models.TagRef
	InsertError   error
	UpdateError   error
	DeleteError   error
	ViewError     error
	RecordedViews int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles:      make(map[string]*models.Article),
		CategoryRefs:  make(map[string]models.CategoryRef),
		TagsByArticle: make(map[string][]models.TagRef),
	}
}

func (m *MockArticleRepository) ListPublished(ctx context.Context, categoryID string) ([]models.ArticleSummary, error) {
	var summaries []models.ArticleSummary
	for _, a := range m.Articles {
		if a.Status != models.StatusPublished {
			continue
		}
		if categoryID != "" && a.CategoryID != categoryID {
			continue
		}
		summaries = append(summaries, m.summarize(a))
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].PublishedAt == nil || summaries[j].PublishedAt == nil {
			return summaries[i].PublishedAt != nil
		}
		return summaries[i].PublishedAt.After(*summaries[j].PublishedAt)
	})
	return summaries, nil
}

func (m *MockArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.ArticleDetail, error) {
	for _, a := range m.Articles {
		if a.Slug != slug || a.Status != models.StatusPublished {
			continue
		}
		detail := &models.ArticleDetail{
			ArticleSummary: m.summarize(a),
			Content:        a.Content,
			Tags:           m.TagsByArticle[a.ID],
		}
		return detail, nil
	}
	return nil, nil
}

// RecordView writes the caller's stale count + 1 as a literal value, like
// the real repository: two callers holding the same count lose a view.
func (m *MockArticleRepository) RecordView(ctx context.Context, id string, currentCount int) error {
	if m.ViewError != nil {
		return m.ViewError
	}
	if a, ok := m.Articles[id]; ok {
		a.ViewCount = currentCount + 1
		m.RecordedViews++
	}
	return nil
}

func (m *MockArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	articles := make([]models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, *a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].CreatedAt.After(articles[j].CreatedAt) })
	return articles, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles[id], nil
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) error {
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Articles[article.ID] = article
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

func (m *MockArticleRepository) summarize(a *models.Article) models.ArticleSummary {
	s := models.ArticleSummary{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		Summary:          a.Summary,
		FeaturedImageURL: a.FeaturedImageURL,
		PublishedAt:      a.PublishedAt,
		ViewCount:        a.ViewCount,
	}
	if ref, ok := m.CategoryRefs[a.CategoryID]; ok {
		s.Category = &ref
	}
	return s
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	Messages    []*models.Message
	InsertError error
}

func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{}
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Messages = append(m.Messages, message)
	return nil
}

func (m *MockMessageRepository) Count(ctx context.Context) (int, error) {
	return len(m.Messages), nil
}
