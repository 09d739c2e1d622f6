package models

import (
	"time"
)

// Category represents an article category.
// Slug is unique within the collection, lowercase, [a-z0-9-]+.
type Category struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Tag represents an article tag with the same slug constraint as Category.
// Deleting a tag cascades through article_tag_relations.
type Tag struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TagRelation joins an article to a tag. It has no identity of its own and
// is only ever created or destroyed as a side effect of article tagging.
type TagRelation struct {
	ArticleID string `json:"article_id" db:"article_id"`
	TagID     string `json:"tag_id" db:"tag_id"`
}
