package status_change_post

import (
	"errors"
	"net/http"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

const (
	msgOrderNotFound     = "Order not found"
	msgInvalidTransition = "Order cannot be changed to IN TRANSIT or DELIVERED if it's not assigned."
	msgInvalidStatus     = "Invalid order status"
	msgInternalError     = "Internal Server Error"
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

// ServeHTTP принимает форму orderId/newStatus и возвращает на главную страницу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	orderID := strings.TrimSpace(r.PostForm.Get("orderId"))
	newStatus := entities.OrderStatusType(strings.TrimSpace(r.PostForm.Get("newStatus")))

	updated, err := h.service.ChangeStatus(r.Context(), orderID, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			http.Error(w, msgOrderNotFound, http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidTransition):
			http.Error(w, msgInvalidTransition, http.StatusBadRequest)
		case errors.Is(err, order.ErrInvalidStatus):
			http.Error(w, msgInvalidStatus, http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("order_id", orderID),
				logger.NewField("error", err),
			).Error("change order status")
			http.Error(w, msgInternalError, http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("order status changed",
		logger.NewField("order_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
	)
	http.Redirect(w, r, "/", http.StatusFound)
}
