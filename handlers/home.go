package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomePage renders the public landing page.
func (h *Handler) HomePage(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", gin.H{
		"Title": "KosHub - Integrated Accommodation & Living Support Platform",
	})
}

// ServicesPage renders the living-support services hub.
func (h *Handler) ServicesPage(c *gin.Context) {
	h.render(c, http.StatusOK, "services.html", gin.H{
		"Title": "Layanan",
	})
}
