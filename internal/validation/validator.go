package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/portfolio-content-api/internal/models"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	slugRegex       = regexp.MustCompile(`^[a-z0-9-]+$`)
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
)

// Field length bounds
const (
	MaxNameLen     = 50
	MaxTitleLen    = 200
	MaxSlugLen     = 50
	MaxSummaryLen  = 500
	MaxImageURLLen = 500
	MaxPersonLen   = 100
	MaxEmailLen    = 255
	MinMessageLen  = 10
	MaxMessageLen  = 2000
)

// Error is a single validation failure keyed to the first failing field.
// Validation stops at the first broken rule, so a submission surfaces at
// most one of these.
type Error struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func fail(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// TagInput is the raw admin form for a tag
type TagInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryInput is the raw admin form for a category
type CategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ArticleInput is the raw admin form for an article
type ArticleInput struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Summary          string   `json:"summary"`
	Content          string   `json:"content"`
	FeaturedImageURL string   `json:"featured_image_url"`
	Status           string   `json:"status"`
	CategoryID       string   `json:"category_id"`
	TagIDs           []string `json:"tag_ids"`
}

// MessageInput is the raw public contact form
type MessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ValidateTag checks a tag form, trimming fields in place. It returns the
// first failing rule only; a nil result means every field passed and the
// input is safe to hand to the store.
func ValidateTag(in *TagInput) *Error {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)

	if in.Name == "" {
		return fail("name", "Name is required")
	}
	if len(in.Name) > MaxNameLen {
		return fail("name", fmt.Sprintf("Name must be less than %d characters", MaxNameLen))
	}
	return validateSlugField(in.Slug)
}

// ValidateCategory checks a category form; same rules as tags
func ValidateCategory(in *CategoryInput) *Error {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)

	if in.Name == "" {
		return fail("name", "Name is required")
	}
	if len(in.Name) > MaxNameLen {
		return fail("name", fmt.Sprintf("Name must be less than %d characters", MaxNameLen))
	}
	return validateSlugField(in.Slug)
}

// ValidateArticle checks an article form, trimming text fields in place
func ValidateArticle(in *ArticleInput) *Error {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Content = strings.TrimSpace(in.Content)
	in.FeaturedImageURL = strings.TrimSpace(in.FeaturedImageURL)

	if in.Title == "" {
		return fail("title", "Title is required")
	}
	if len(in.Title) > MaxTitleLen {
		return fail("title", fmt.Sprintf("Title must be less than %d characters", MaxTitleLen))
	}
	if err := validateSlugField(in.Slug); err != nil {
		return err
	}
	if in.Summary == "" {
		return fail("summary", "Summary is required")
	}
	if len(in.Summary) > MaxSummaryLen {
		return fail("summary", fmt.Sprintf("Summary must be less than %d characters", MaxSummaryLen))
	}
	if in.Content == "" {
		return fail("content", "Content is required")
	}
	if len(in.FeaturedImageURL) > MaxImageURLLen {
		return fail("featured_image_url", fmt.Sprintf("Featured image URL must be less than %d characters", MaxImageURLLen))
	}
	if !models.ValidStatuses[models.ArticleStatus(in.Status)] {
		return fail("status", "Status must be one of: draft, published")
	}
	if in.CategoryID != "" && !isValidUUID(in.CategoryID) {
		return fail("category_id", "Category reference is not a valid ID")
	}
	for _, id := range in.TagIDs {
		if !isValidUUID(id) {
			return fail("tag_ids", "Tag reference is not a valid ID")
		}
	}
	return nil
}

// ValidateMessage checks the public contact form, trimming fields in place
func ValidateMessage(in *MessageInput) *Error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		return fail("name", "Name is required")
	}
	if len(in.Name) > MaxPersonLen {
		return fail("name", fmt.Sprintf("Name must be less than %d characters", MaxPersonLen))
	}
	if !personNameRegex.MatchString(in.Name) {
		return fail("name", "Name contains invalid characters")
	}
	if in.Email == "" || !emailRegex.MatchString(in.Email) {
		return fail("email", "Invalid email address")
	}
	if len(in.Email) > MaxEmailLen {
		return fail("email", fmt.Sprintf("Email must be less than %d characters", MaxEmailLen))
	}
	if len(in.Message) < MinMessageLen {
		return fail("message", fmt.Sprintf("Message must be at least %d characters", MinMessageLen))
	}
	if len(in.Message) > MaxMessageLen {
		return fail("message", fmt.Sprintf("Message must be less than %d characters", MaxMessageLen))
	}
	return nil
}

// validateSlugField applies the shared slug rule: required, bounded,
// lowercase letters, digits and hyphens only. An auto-generated slug that
// collapsed to the empty string fails here rather than being persisted.
func validateSlugField(s string) *Error {
	if s == "" {
		return fail("slug", "Slug is required")
	}
	if len(s) > MaxSlugLen {
		return fail("slug", fmt.Sprintf("Slug must be less than %d characters", MaxSlugLen))
	}
	if !slugRegex.MatchString(s) {
		return fail("slug", "Slug must contain only lowercase letters, numbers, and hyphens")
	}
	return nil
}

// isValidUUID checks if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
