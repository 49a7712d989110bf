package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notekeeper/internal/adapters/http/dto"
	"notekeeper/internal/app"
	"notekeeper/internal/domain"
)

// FeedbackHandler serves the guestbook page and form submissions.
type FeedbackHandler struct {
	service *app.FeedbackService
}

// NewFeedbackHandler creates a feedback handler.
func NewFeedbackHandler(service *app.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// List handles GET /feedback, rendering the entries and the submit
// form on one page.
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context())
	if err != nil {
		renderDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "feedback.tmpl", gin.H{
		"Entries": entries,
	})
}

// Submit handles POST /feedback. A blank message is silently dropped;
// the browser is sent back to the guestbook either way.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var form dto.FeedbackForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "could not read the submitted form")
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), form.Name, form.Message); err != nil {
		if !domain.IsValidation(err) {
			renderDomainError(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, "/feedback")
}
