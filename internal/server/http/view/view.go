// Package view renders a page name plus an attribute bag.
package view

import (
	"github.com/gin-gonic/gin"
)

// Page names understood by the storefront front end.
const (
	PageRegister = "customerRegister"
	PageLogin    = "customerLogin"
	PagePortal   = "customerPortal"
	PageAddress  = "updateAddress"
	PageAbout    = "aboutUs"
	PageContact  = "contactUs"
	PageError    = "error"
)

// Attributes is the model handed to a page.
type Attributes map[string]any

// Renderer writes a page response.
type Renderer interface {
	Render(c *gin.Context, status int, page string, attrs Attributes)
}

// JSONRenderer writes {"page": ..., "attributes": {...}}.
type JSONRenderer struct{}

func NewJSONRenderer() JSONRenderer {
	return JSONRenderer{}
}

func (JSONRenderer) Render(c *gin.Context, status int, page string, attrs Attributes) {
	if attrs == nil {
		attrs = Attributes{}
	}
	c.JSON(status, gin.H{"page": page, "attributes": attrs})
}
