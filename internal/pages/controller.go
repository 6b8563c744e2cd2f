package pages

import (
	"net/http"

	"college-portal/web"

	"github.com/gin-gonic/gin"
)

type PagesController struct{}

// GET /
func (pc *PagesController) Home(c *gin.Context) {
	web.HTML(c, http.StatusOK, "home", nil)
}

// GET /about
func (pc *PagesController) About(c *gin.Context) {
	web.HTML(c, http.StatusOK, "about", nil)
}

// NotFound answers every unmatched route.
func (pc *PagesController) NotFound(c *gin.Context) {
	web.HTML(c, http.StatusNotFound, "404", gin.H{"message": "Page Not Found"})
}
