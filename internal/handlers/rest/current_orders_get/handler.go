package current_orders_get

import (
	"net/http"

	"dispatch/internal/pkg/views"
	"dispatch/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	service  Service
	renderer Renderer
}

func New(log handlerLogger, service Service, renderer Renderer) *Handler {
	handlerLog := log.With(logger.NewField("view", views.CurrentOrders))

	return &Handler{
		log:      handlerLog,
		service:  service,
		renderer: renderer,
	}
}

// ServeHTTP отдаёт заказы в статусе RECEIVED, новые первыми.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.ListCurrentOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list current orders")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, views.CurrentOrders, listing); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render view")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
