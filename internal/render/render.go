package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

const landingTemplate = "templates/index.html"

//go:embed templates/*.html
var templateFS embed.FS

type LandingData struct {
	Year string
}

// Landing renders the landing page template. It is parsed once and safe for
// concurrent use.
type Landing struct {
	tpl *template.Template
}

func NewLanding() (*Landing, error) {
	return NewLandingFS(templateFS, landingTemplate)
}

// NewLandingFS parses the named template from fsys.
func NewLandingFS(fsys fs.FS, name string) (*Landing, error) {
	tpl, err := template.ParseFS(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &Landing{tpl: tpl}, nil
}

func (l *Landing) Render(w io.Writer, year string) error {
	if err := l.tpl.Execute(w, LandingData{Year: year}); err != nil {
		return fmt.Errorf("executing landing template: %w", err)
	}
	return nil
}
