package validation

import (
	"strings"
	"testing"
)

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name      string
		input     TagInput
		wantField string
	}{
		{
			name:  "valid tag",
			input: TagInput{Name: "Design", Slug: "design"},
		},
		{
			name:  "name at maximum length",
			input: TagInput{Name: strings.Repeat("a", MaxNameLen), Slug: "a"},
		},
		{
			name:      "missing name",
			input:     TagInput{Slug: "design"},
			wantField: "name",
		},
		{
			name:      "whitespace-only name",
			input:     TagInput{Name: "   ", Slug: "design"},
			wantField: "name",
		},
		{
			name:      "name too long",
			input:     TagInput{Name: strings.Repeat("a", MaxNameLen+1), Slug: "a"},
			wantField: "name",
		},
		{
			name:      "missing slug",
			input:     TagInput{Name: "Design"},
			wantField: "slug",
		},
		{
			name:      "slug with uppercase",
			input:     TagInput{Name: "Design", Slug: "Design"},
			wantField: "slug",
		},
		{
			name:      "slug with spaces",
			input:     TagInput{Name: "Design", Slug: "my design"},
			wantField: "slug",
		},
		{
			name:      "slug too long",
			input:     TagInput{Name: "Design", Slug: strings.Repeat("a", MaxSlugLen+1)},
			wantField: "slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(&tt.input)
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name      string
		input     CategoryInput
		wantField string
	}{
		{
			name:  "valid category",
			input: CategoryInput{Name: "Engineering", Slug: "engineering"},
		},
		{
			name:      "missing name",
			input:     CategoryInput{Slug: "engineering"},
			wantField: "name",
		},
		{
			name:      "invalid slug characters",
			input:     CategoryInput{Name: "Engineering", Slug: "eng_neering"},
			wantField: "slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(&tt.input)
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidateArticle(t *testing.T) {
	valid := func() ArticleInput {
		return ArticleInput{
			Title:   "Building a Publishing Pipeline",
			Slug:    "building-a-publishing-pipeline",
			Summary: "How the read and write paths fit together.",
			Content: "Full article body.",
			Status:  "draft",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*ArticleInput)
		wantField string
	}{
		{
			name:   "valid draft",
			mutate: func(in *ArticleInput) {},
		},
		{
			name: "valid published with references",
			mutate: func(in *ArticleInput) {
				in.Status = "published"
				in.CategoryID = "a7f43f9c-51b2-4f6e-9a3d-8f2a1b0c4d5e"
				in.TagIDs = []string{"b8054a0d-62c3-4071-ab4e-9f3b2c1d5e6f"}
			},
		},
		{
			name:      "missing title",
			mutate:    func(in *ArticleInput) { in.Title = "" },
			wantField: "title",
		},
		{
			name:      "title too long",
			mutate:    func(in *ArticleInput) { in.Title = strings.Repeat("t", MaxTitleLen+1) },
			wantField: "title",
		},
		{
			name:      "missing slug",
			mutate:    func(in *ArticleInput) { in.Slug = "" },
			wantField: "slug",
		},
		{
			name:      "missing summary",
			mutate:    func(in *ArticleInput) { in.Summary = "" },
			wantField: "summary",
		},
		{
			name:      "summary too long",
			mutate:    func(in *ArticleInput) { in.Summary = strings.Repeat("s", MaxSummaryLen+1) },
			wantField: "summary",
		},
		{
			name:      "missing content",
			mutate:    func(in *ArticleInput) { in.Content = "" },
			wantField: "content",
		},
		{
			name:      "image url too long",
			mutate:    func(in *ArticleInput) { in.FeaturedImageURL = strings.Repeat("u", MaxImageURLLen+1) },
			wantField: "featured_image_url",
		},
		{
			name:      "unknown status",
			mutate:    func(in *ArticleInput) { in.Status = "archived" },
			wantField: "status",
		},
		{
			name:      "malformed category reference",
			mutate:    func(in *ArticleInput) { in.CategoryID = "not-a-uuid" },
			wantField: "category_id",
		},
		{
			name:      "malformed tag reference",
			mutate:    func(in *ArticleInput) { in.TagIDs = []string{"not-a-uuid"} },
			wantField: "tag_ids",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(&input)
			err := ValidateArticle(&input)
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidateArticle_FirstFailureOnly(t *testing.T) {
	// Title and slug are both broken; only the title error surfaces.
	input := ArticleInput{Slug: "BAD SLUG"}
	err := ValidateArticle(&input)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if err.Field != "title" {
		t.Errorf("expected first failing field 'title', got %q", err.Field)
	}
}

func TestValidateMessage(t *testing.T) {
	valid := func() MessageInput {
		return MessageInput{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Message: "I would like to discuss a project.",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*MessageInput)
		wantField string
	}{
		{
			name:   "valid message",
			mutate: func(in *MessageInput) {},
		},
		{
			name:   "name with apostrophe and hyphen",
			mutate: func(in *MessageInput) { in.Name = "Jean-Luc O'Brien" },
		},
		{
			name:   "message at minimum length",
			mutate: func(in *MessageInput) { in.Message = strings.Repeat("m", MinMessageLen) },
		},
		{
			name:      "missing name",
			mutate:    func(in *MessageInput) { in.Name = "" },
			wantField: "name",
		},
		{
			name:      "name with digits",
			mutate:    func(in *MessageInput) { in.Name = "Ada 123" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(in *MessageInput) { in.Name = strings.Repeat("a", MaxPersonLen+1) },
			wantField: "name",
		},
		{
			name:      "missing email",
			mutate:    func(in *MessageInput) { in.Email = "" },
			wantField: "email",
		},
		{
			name:      "malformed email",
			mutate:    func(in *MessageInput) { in.Email = "ada@nowhere" },
			wantField: "email",
		},
		{
			name:      "message one short of minimum",
			mutate:    func(in *MessageInput) { in.Message = strings.Repeat("m", MinMessageLen-1) },
			wantField: "message",
		},
		{
			name:      "message too long",
			mutate:    func(in *MessageInput) { in.Message = strings.Repeat("m", MaxMessageLen+1) },
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(&input)
			err := ValidateMessage(&input)
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidateMessage_TrimsBeforeLengthCheck(t *testing.T) {
	input := MessageInput{
		Name:    "  Ada  ",
		Email:   " ada@example.com ",
		Message: "   short    ",
	}
	err := ValidateMessage(&input)
	if err == nil {
		t.Fatal("expected a validation error for padded short message")
	}
	if err.Field != "message" {
		t.Errorf("expected field 'message', got %q", err.Field)
	}
	if input.Name != "Ada" {
		t.Errorf("expected trimmed name, got %q", input.Name)
	}
}

func checkValidation(t *testing.T, err *Error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Fatalf("expected no error, got %v on field %q", err, err.Field)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected error on field %q, got none", wantField)
	}
	if err.Field != wantField {
		t.Errorf("expected field %q, got %q (%s)", wantField, err.Field, err.Message)
	}
	if err.Message == "" {
		t.Error("expected a non-empty error message")
	}
}
