package ping_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/pkg/logger"
)

const pong = "pong"

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping")),
	}
}

// ServeHTTP отвечает {"message":"pong"} без обращения к зависимостям.
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := pong

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(dto.PingResponse{Message: &message}); err != nil {
		h.log.Error("encode ping response", logger.NewField("error", err))
	}
}
