package couriers_get

import (
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
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
	var availability *entities.CourierAvailability
	query := r.URL.Query()
	if query.Has("availability") {
		value := entities.CourierAvailability(query.Get("availability"))
		availability = &value
	}

	courierEntities, err := h.service.GetCouriers(r.Context(), availability)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.CouriersDTO(courierEntities))
}
