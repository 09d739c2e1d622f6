package models

import (
	"time"
)

// ArticleStatus represents the publication status of an article
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[ArticleStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
}

// Article represents an article in the system.
// Slug is globally unique. ViewCount only ever increases and is written
// exclusively through the view-count updater.
type Article struct {
	ID               string        `json:"id" db:"id"`
	Title            string        `json:"title" db:"title"`
	Slug             string        `json:"slug" db:"slug"`
	Summary          string        `json:"summary" db:"summary"`
	Content          string        `json:"content" db:"content"`
	FeaturedImageURL string        `json:"featured_image_url,omitempty" db:"featured_image_url"`
	Status           ArticleStatus `json:"status" db:"status"`
	CategoryID       string        `json:"category_id,omitempty" db:"category_id"`
	ViewCount        int           `json:"view_count" db:"view_count"`
	PublishedAt      *time.Time    `json:"published_at,omitempty" db:"published_at"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`

	// TagIDs holds the tag relation set for admin edit flows; persisted
	// through the article_tag_relations join table, never as a column.
	TagIDs []string `json:"tag_ids,omitempty" db:"-"`
}

// Published reports whether the article is visible to the public read pipeline
func (a *Article) Published() bool {
	return a.Status == StatusPublished
}

// CategoryRef is the read-only category metadata joined onto article reads
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TagRef is the read-only tag metadata joined onto article detail reads
type TagRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleSummary is the list-view shape produced for the public renderer
type ArticleSummary struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Slug             string       `json:"slug"`
	Summary          string       `json:"summary"`
	FeaturedImageURL string       `json:"featured_image_url,omitempty"`
	PublishedAt      *time.Time   `json:"published_at"`
	ViewCount        int          `json:"view_count"`
	Category         *CategoryRef `json:"category,omitempty"`
}

// ArticleDetail is the single-article shape produced for the public renderer.
// Content is raw markup; rendering is the consumer's concern.
type ArticleDetail struct {
	ArticleSummary
	Content string   `json:"content"`
	Tags    []TagRef `json:"tags"`
}
