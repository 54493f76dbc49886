package order_assign_post

import (
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	orderID := strings.TrimSpace(r.PostForm.Get("orderId"))
	licensePlate := r.PostForm.Get("licensePlate")

	updated, err := h.service.AssignOrder(r.Context(), orderID, licensePlate)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			http.Error(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, order.ErrDriverNotFound):
			http.Error(w, "Driver not found", http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			http.Error(w, "Order cannot be unassigned while it is IN TRANSIT or DELIVERED.", http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("assign order")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("order assignment changed",
		logger.NewField("order_id", updated.ID),
		logger.NewField("assigned_to", updated.AssignedTo),
	)
	http.Redirect(w, r, "/", http.StatusFound)
}
