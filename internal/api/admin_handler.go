package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/portfolio-content-api/internal/admin"
	"github.com/portfolio-content-api/internal/models"
	"github.com/portfolio-content-api/internal/service"
	"github.com/portfolio-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// uniqueViolation is the Postgres error code for a unique constraint
// violation (e.g. duplicate slug).
const uniqueViolation = "23505"

// registerAdminRoutes wires one CRUD controller per taxonomy type onto the
// authenticated admin group.
func registerAdminRoutes(g *gin.RouterGroup, services *service.Services, log zerolog.Logger) {
	registerCRUD(g, "tags",
		admin.NewController[models.Tag, validation.TagInput](services.Tag, log, "tags"))
	registerCRUD(g, "categories",
		admin.NewController[models.Category, validation.CategoryInput](services.Category, log, "categories"))
	registerCRUD(g, "articles",
		admin.NewController[models.Article, validation.ArticleInput](services.Article, log, "articles"))
}

// registerCRUD exposes a controller's events as routes. Every response
// carries the settled view state plus the current list, so the console can
// render exactly what the machine decided.
func registerCRUD[R, F any](g *gin.RouterGroup, name string, ctrl *admin.Controller[R, F]) {
	col := g.Group("/" + name)

	col.GET("", func(c *gin.Context) {
		handleEvent(c, ctrl, admin.Event[R, F]{Type: admin.EventList})
	})

	col.POST("/new", func(c *gin.Context) {
		handleEvent(c, ctrl, admin.Event[R, F]{Type: admin.EventNew})
	})

	col.POST("/:id/edit", func(c *gin.Context) {
		handleEvent(c, ctrl, admin.Event[R, F]{Type: admin.EventEdit, ID: c.Param("id")})
	})

	col.POST("/cancel", func(c *gin.Context) {
		handleEvent(c, ctrl, admin.Event[R, F]{Type: admin.EventCancel})
	})

	col.POST("", func(c *gin.Context) {
		var form F
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		handleEvent(c, ctrl, admin.Event[R, F]{Type: admin.EventSubmit, Form: &form})
	})

	col.DELETE("/:id", func(c *gin.Context) {
		handleEvent(c, ctrl, admin.Event[R, F]{
			Type:      admin.EventDelete,
			ID:        c.Param("id"),
			Confirmed: c.Query("confirm") == "true",
		})
	})
}

// handleEvent runs one event to settlement and writes the outcome
func handleEvent[R, F any](c *gin.Context, ctrl *admin.Controller[R, F], event admin.Event[R, F]) {
	result, err := ctrl.Handle(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, admin.ErrConfirmationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := result.Items
	if items == nil {
		items = []R{}
	}
	c.JSON(statusFor(result), gin.H{
		"state": result.State,
		"items": items,
	})
}

// statusFor maps a settled result to an HTTP status: validation failures
// are 422, duplicate-key store failures 409, other store failures 500,
// everything else 200.
func statusFor[R any](result *admin.Result[R]) int {
	switch result.Kind {
	case admin.ErrorValidation:
		return http.StatusUnprocessableEntity
	case admin.ErrorStore:
		var pqErr *pq.Error
		if errors.As(result.Err, &pqErr) && pqErr.Code == uniqueViolation {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
