// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"notekeeper/internal/domain"
	"notekeeper/internal/platform/logging"
)

// renderNotFound renders the HTML 404 page.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{
		"Path": c.Request.URL.Path,
	})
}

// renderError renders the generic HTML error page.
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.tmpl", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// renderDomainError maps a domain error onto an HTML page. Not-found
// gets the 404 page; everything else gets the generic error page, with
// internal failures logged since their details never reach the client.
func renderDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		renderNotFound(c)

	case domain.IsUnavailable(err):
		renderError(c, http.StatusServiceUnavailable, "the service is temporarily unavailable")

	default:
		logging.FromContext(c.Request.Context()).Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		renderError(c, http.StatusInternalServerError, "something went wrong")
	}
}
