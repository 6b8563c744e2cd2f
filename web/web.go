// Package web holds the embedded HTML templates and static assets and the
// helpers that render them through gin.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"college-portal/internal/middlewares"
	"college-portal/internal/util"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl static
var files embed.FS

var funcs = template.FuncMap{
	"navLink": navLink,
	"str":     util.StringValue,
	"num":     num,
}

// ParseTemplates parses every page and partial into one set. Pages are
// addressed by the name given in their {{define}} block.
func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.tmpl")
}

// Register installs the templates and the /static file server on r.
func Register(r *gin.Engine) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(files, "static")
	if err != nil {
		return err
	}
	r.StaticFS("/static", http.FS(static))
	return nil
}

// HTML renders a page with the per-request view state every layout needs.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["activeRoute"] = c.GetString(middlewares.ActiveRouteKey)
	c.HTML(status, name, data)
}

func navLink(url, label, active string) template.HTML {
	class := "nav-item"
	if url == active {
		class = "nav-item active"
	}
	return template.HTML(`<li class="` + class + `"><a class="nav-link" href="` +
		template.HTMLEscapeString(url) + `">` + template.HTMLEscapeString(label) + `</a></li>`)
}

func num(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
