package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"notekeeper/internal/adapters/http/dto"
	"notekeeper/internal/app"
)

// ItemHandler serves the items notebook pages and form submissions.
type ItemHandler struct {
	service *app.ItemService
}

// NewItemHandler creates an item handler.
func NewItemHandler(service *app.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /items.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		renderDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "items_index.tmpl", gin.H{
		"Items": items,
	})
}

// NewForm handles GET /items/new.
func (h *ItemHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "items_new.tmpl", gin.H{})
}

// Create handles POST /items and redirects to the created item.
func (h *ItemHandler) Create(c *gin.Context) {
	var form dto.ItemForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "could not read the submitted form")
		return
	}

	item, err := h.service.Create(c.Request.Context(), form.Title, form.Content)
	if err != nil {
		renderDomainError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/items/"+item.ID)
}

// Show handles GET /items/:id.
func (h *ItemHandler) Show(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "items_show.tmpl", gin.H{
		"Item": item,
	})
}

// EditForm handles GET /items/:id/edit.
func (h *ItemHandler) EditForm(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "items_edit.tmpl", gin.H{
		"Item": item,
	})
}

// Update handles PUT /items/:id (tunneled through the method-override
// wrapper) and redirects back to the item.
func (h *ItemHandler) Update(c *gin.Context) {
	var form dto.ItemForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, http.StatusBadRequest, "could not read the submitted form")
		return
	}

	id := c.Param("id")

	if _, err := h.service.Update(c.Request.Context(), id, form.Title, form.Content); err != nil {
		renderDomainError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/items/"+id)
}

// Delete handles DELETE /items/:id and redirects to the list.
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderDomainError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/items")
}
