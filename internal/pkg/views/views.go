package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"dispatch/internal/entities"
	"github.com/shopspring/decimal"
)

const (
	Orders        = "orders"
	OrderHistory  = "order-history"
	CurrentOrders = "current-orders"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return d.StringFixed(2)
	},
	"join": strings.Join,

	"statuses": func() []entities.OrderStatusType {
		return entities.OrderStatuses
	},
}

// Renderer держит по одному набору шаблонов на каждую страницу: layout + страница.
type Renderer struct {
	templates map[string]*template.Template
}

func New() (*Renderer, error) {
	names := []string{Orders, OrderHistory, CurrentOrders}

	templates := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New("layout.html").
			Funcs(funcs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		templates[name] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// Render пишет страницу целиком или ничего: при ошибке шаблона w не трогается.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render view %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
