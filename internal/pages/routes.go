package pages

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	pagesController := &PagesController{}

	r.GET("/", pagesController.Home)
	r.GET("/about", pagesController.About)
	r.NoRoute(pagesController.NotFound)
}
