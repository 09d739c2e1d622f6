package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/service"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// PublicHandler serves the read pipeline and the contact form
type PublicHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(services *service.Services, log zerolog.Logger) *PublicHandler {
	return &PublicHandler{
		services: services,
		log:      log.With().Str("handler", "public").Logger(),
	}
}

// ListCategories handles GET /v1/categories
func (h *PublicHandler) ListCategories(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// ListArticles handles GET /v1/articles?category=<id>
// Only published articles ever leave this endpoint, newest first.
func (h *PublicHandler) ListArticles(c *gin.Context) {
	categoryID := c.Query("category")

	articles, err := h.services.Article.ListPublished(c.Request.Context(), categoryID)
	if err != nil {
		h.log.Error().Err(err).Str("category", categoryID).Msg("Failed to list articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load articles"})
		return
	}
	if articles == nil {
		articles = []models.ArticleSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticle handles GET /v1/articles/:slug
// A missing slug and an unpublished article look the same: 404.
func (h *PublicHandler) GetArticle(c *gin.Context) {
	slug := c.Param("slug")

	article, err := h.services.Article.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to fetch article")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// SubmitMessage handles POST /v1/messages
func (h *PublicHandler) SubmitMessage(c *gin.Context) {
	var form validation.MessageInput
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	message, err := h.services.Message.Submit(c.Request.Context(), &form)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, verr)
			return
		}
		h.log.Error().Err(err).Msg("Failed to store contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "sent", "id": message.ID})
}
