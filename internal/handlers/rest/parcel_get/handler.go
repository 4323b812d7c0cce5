package parcel_get

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["tracking_number"]

	parcel, err := h.service.GetParcel(r.Context(), trackingNumber)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.ParcelDTO(*parcel))
}
