package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notekeeper/internal/app"
	"notekeeper/internal/domain"
)

// recentItemsOnHome caps how many items the home page previews.
const recentItemsOnHome = 5

// PageHandler serves the static and near-static HTML pages.
type PageHandler struct {
	items    *app.ItemService
	feedback *app.FeedbackService
}

// NewPageHandler creates a page handler.
func NewPageHandler(items *app.ItemService, feedback *app.FeedbackService) *PageHandler {
	return &PageHandler{items: items, feedback: feedback}
}

// Home handles GET /. It shows a short list of recent items and entry
// counts; storage trouble degrades to an empty preview rather than an
// error page.
func (h *PageHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		recent        []domain.Item
		itemCount     int
		feedbackCount int
	)

	if items, err := h.items.List(ctx); err == nil {
		itemCount = len(items)
		if len(items) > recentItemsOnHome {
			items = items[:recentItemsOnHome]
		}
		recent = items
	}

	if entries, err := h.feedback.List(ctx); err == nil {
		feedbackCount = len(entries)
	}

	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"RecentItems":   recent,
		"ItemCount":     itemCount,
		"FeedbackCount": feedbackCount,
	})
}

// About handles GET /about.
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{})
}

// User handles GET /user/:name, greeting the visitor by the path
// segment. Template escaping keeps arbitrary names safe to echo.
func (h *PageHandler) User(c *gin.Context) {
	c.HTML(http.StatusOK, "user.tmpl", gin.H{
		"Name": c.Param("name"),
	})
}

// Favicon handles GET /favicon.ico with an empty 204 so browsers stop
// asking.
func (h *PageHandler) Favicon(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound is the catch-all handler for unmatched routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	renderNotFound(c)
}
