package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
	"github.com/polkiloo/storefront/internal/server/http/view"
)

// PageHandler serves static informational pages.
type PageHandler struct {
	renderer view.Renderer
}

func NewPageHandler(renderer view.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

// About handles GET /about.
func (h *PageHandler) About(c *gin.Context) {
	h.render(c, view.PageAbout)
}

// Contact handles GET /contact.
func (h *PageHandler) Contact(c *gin.Context) {
	h.render(c, view.PageContact)
}

func (h *PageHandler) render(c *gin.Context, page string) {
	attrs := view.Attributes{}
	if sess := middleware.CurrentSession(c); sess.Bound() {
		attrs["customer"] = dto.CustomerView{Username: sess.Username}
	}
	h.renderer.Render(c, http.StatusOK, page, attrs)
}
