package courier_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/courier"
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
	id := mux.Vars(r)["id"]

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		// в пути такого курьера быть не может
		if errors.Is(err, courier.ErrInvalidCourierID) {
			response.NotFound(w, h.log, courier.ErrCourierNotFound.Error())
			return
		}
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.CourierDTO(*courierEntity))
}
