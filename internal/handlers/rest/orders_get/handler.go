package orders_get

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
	handlerLog := log.With(logger.NewField("view", views.Orders))

	return &Handler{
		log:      handlerLog,
		service:  service,
		renderer: renderer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.ListActiveOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list active orders")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, views.Orders, listing); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("render view")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
