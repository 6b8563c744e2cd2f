package middlewares

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const ActiveRouteKey = "activeRoute"

// ActiveRoute stores the navigation section of the request path so the
// layout can highlight it.
func ActiveRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ActiveRouteKey, ResolveActiveRoute(c.Request.URL.Path))
		c.Next()
	}
}

// ResolveActiveRoute keeps the first path segment, plus the second one when
// it is not numeric: /students/add stays as is, /student/12 becomes /student.
func ResolveActiveRoute(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if segments[0] == "" {
		return "/"
	}
	if len(segments) < 2 || segments[1] == "" || isNumeric(segments[1]) {
		return "/" + segments[0]
	}
	return "/" + segments[0] + "/" + segments[1]
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
