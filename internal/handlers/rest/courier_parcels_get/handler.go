package courier_parcels_get

import (
	"net/http"

	"github.com/gorilla/mux"

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
	courierID := mux.Vars(r)["id"]

	parcels, err := h.service.ListParcelsByCourier(r.Context(), courierID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ParcelsDTO(parcels))
}
