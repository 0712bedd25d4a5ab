package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// Currency prefixes every amount the storefront displays.
const Currency = "₵"

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return Currency + d.StringFixed(2)
	},
	"amount": func(s string) string {
		return Currency + s
	},
	"date": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"percent": func(f float64) string {
		return fmt.Sprintf("%.0f%%", f)
	},
	"millis": func(d time.Duration) int64 {
		return d.Milliseconds()
	},
}

// Renderer executes one parsed template set per page.
type Renderer struct {
	pages map[Target]*template.Template
}

func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
		"templates/layout.html",
		"templates/partials.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[Target]*template.Template, len(targets))}
	for _, t := range Targets() {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+string(t)+".html"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", t, err)
		}
		r.pages[t] = clone
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, p *Page) error {
	tmpl, ok := r.pages[p.Target]
	if !ok {
		return fmt.Errorf("no template for page %q", p.Target)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", p)
}
