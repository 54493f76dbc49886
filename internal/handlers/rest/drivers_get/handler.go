package drivers_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
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
	drivers, err := h.service.GetDrivers(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get drivers")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.Driver, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, dto.Driver{
			ID:           d.ID,
			Username:     d.Username,
			FullName:     d.FullName,
			VehicleModel: d.VehicleModel,
			Color:        d.Color,
			LicensePlate: d.LicensePlate,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
