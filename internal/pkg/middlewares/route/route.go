package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон маршрута mux ("/orders/{id}") для меток метрик,
// или сырой путь, если маршрут не сопоставлен.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
