package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/domain"
	"github.com/dexsamir/portfolio/internal/forms"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ImageResolver turns stored image references into URLs.
type ImageResolver interface {
	ProjectImageURL(ref string) string
	TestimonialImageURL(ref string) string
}

// Renderer is a gin HTMLRender with one template set per page, each
// combining the shared layout with the page's own blocks.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer(images ImageResolver) (*Renderer, error) {
	base, err := template.New("layout").Funcs(funcMap(images)).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	err = fs.WalkDir(templateFS, "templates/pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".html" {
			return err
		}
		t, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := t.ParseFS(templateFS, p); err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, "templates/pages/"), ".html")
		r.templates[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.templates[name]
	if !ok {
		return render.Data{
			ContentType: "text/plain; charset=utf-8",
			Data:        []byte("template " + name + " not found"),
		}
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Static serves the embedded assets.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// imageSrc marks inline image data as a trusted URL; html/template would
// otherwise replace it with #ZgotmplZ.
func imageSrc(u string) any {
	if backend.IsInlineImage(u) {
		return template.URL(u)
	}
	return u
}

func funcMap(images ImageResolver) template.FuncMap {
	return template.FuncMap{
		"initials":    domain.Initials,
		"avatarColor": domain.AvatarColor,
		"projectImage": func(ref string) any {
			return imageSrc(images.ProjectImageURL(ref))
		},
		"avatarImage": func(ref string) any {
			return imageSrc(images.TestimonialImageURL(ref))
		},
		"join": strings.Join,
		"date": func(t domain.Timestamp) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"fieldError": func(err any, field string) string {
			if fe, ok := err.(forms.FieldErrors); ok {
				return fe.Get(field)
			}
			return ""
		},
		"firstError": func(err any) string {
			switch e := err.(type) {
			case forms.FieldErrors:
				return e.First()
			case error:
				return e.Error()
			case string:
				return e
			}
			return ""
		},
	}
}
