package redirect

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tomwray13/url-shortener/pkg/shortener/links"
	"github.com/tomwray13/url-shortener/pkg/shortener/metrics"
)

// Handler handles redirect requests
type Handler struct {
	svc *links.Service
}

// NewHandler creates a new redirect handler
func NewHandler(svc *links.Service) *Handler {
	return &Handler{svc: svc}
}

// Redirect resolves a short code and redirects to its destination.
// This path is intentionally unauthenticated: resolving short codes is the
// public purpose of the service, only mutation requires the API key.
func (h *Handler) Redirect(c *gin.Context) {
	code := c.Param("code")

	link, err := h.svc.FindOne(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve link"})
		return
	}
	if link == nil {
		metrics.RedirectsTotal.WithLabelValues("miss").Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	metrics.RedirectsTotal.WithLabelValues("hit").Inc()
	c.Redirect(http.StatusFound, link.Redirect)
}

// RegisterRoutes registers redirect routes on the root router
// This should be called AFTER all other routes to avoid conflicts
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/:code", h.Redirect)
}
