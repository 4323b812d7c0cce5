package courier_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/courier"
	"parcel-service/pkg/logger"
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
	id := mux.Vars(r)["id"]

	err := h.service.DeleteCourier(r.Context(), id)
	if err != nil {
		if errors.Is(err, courier.ErrInvalidCourierID) {
			response.NotFound(w, h.log, courier.ErrCourierNotFound.Error())
			return
		}
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("courier deleted", logger.NewField("courier_id", id))

	w.WriteHeader(http.StatusNoContent)
}
