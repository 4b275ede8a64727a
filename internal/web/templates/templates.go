package templates

import (
	"context"
	"embed"
	"html/template"
	"io"
)

//go:embed files/*.tmpl
var files embed.FS

var (
	loginTmpl       = mustPage("login.tmpl")
	registerTmpl    = mustPage("register.tmpl")
	videosTmpl      = mustPage("videos.tmpl")
	adminUsersTmpl  = mustPage("admin_users.tmpl")
	adminVideosTmpl = mustPage("admin_videos.tmpl")
	forbiddenTmpl   = mustPage("forbidden.tmpl")
)

func mustPage(page string) *template.Template {
	return template.Must(template.ParseFS(files, "files/base.tmpl", "files/"+page))
}

// Component is a renderable page bound to its data
type Component struct {
	tmpl *template.Template
	data any
}

// Render writes the page to w
func (c Component) Render(_ context.Context, w io.Writer) error {
	return c.tmpl.ExecuteTemplate(w, "base.tmpl", c.data)
}
