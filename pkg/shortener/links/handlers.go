package links

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tomwray13/url-shortener/pkg/shortener/models"
)

// Handler handles link management requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new links handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// CreateLinkRequest represents the request to create a link
type CreateLinkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Redirect    string  `json:"redirect" binding:"required,url"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// UpdateLinkRequest represents a partial update; absent fields are left
// unchanged. shortUrl and id are deliberately not listed.
type UpdateLinkRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Redirect    *string `json:"redirect" binding:"omitempty,url"`
	Description *string `json:"description" binding:"omitempty,min=1"`
}

// ListLinksQuery represents the listing query string. Pointer fields so a
// supplied zero still fails binding: non-numeric or non-positive page/limit
// are rejected here and never reach the service.
type ListLinksQuery struct {
	Page   *int   `form:"page" binding:"omitempty,min=1"`
	Limit  *int   `form:"limit" binding:"omitempty,min=1"`
	Filter string `form:"filter"`
}

// Create creates a new shortened link
func (h *Handler) Create(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.svc.Create(c.Request.Context(), CreateInput{
		Title:       req.Title,
		Redirect:    req.Redirect,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": link})
}

// List returns a filtered, paginated listing of links
func (h *Handler) List(c *gin.Context) {
	var q ListLinksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, limit := DefaultPage, DefaultLimit
	if q.Page != nil {
		page = *q.Page
	}
	if q.Limit != nil {
		limit = *q.Limit
	}

	result, err := h.svc.FindAll(c.Request.Context(), page, limit, q.Filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch links"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result.Data, "meta": result.Meta})
}

// Update applies a partial update to the link behind a short code
func (h *Handler) Update(c *gin.Context) {
	link, ok := h.lookup(c)
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), link.ID, UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Redirect:    req.Redirect,
	})
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// Delete removes the link behind a short code and returns its last state
func (h *Handler) Delete(c *gin.Context) {
	link, ok := h.lookup(c)
	if !ok {
		return
	}

	removed, err := h.svc.Remove(c.Request.Context(), link.ID)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": removed})
}

// lookup resolves the :code path param to a link, writing the error
// response itself when the code is unknown.
func (h *Handler) lookup(c *gin.Context) (*models.Link, bool) {
	code := c.Param("code")

	found, err := h.svc.FindOne(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch link"})
		return nil, false
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return nil, false
	}
	return found, true
}

// RegisterRoutes registers link management routes; callers attach the API
// key middleware on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.PATCH("/:code", h.Update)
	rg.DELETE("/:code", h.Delete)
}
