package parcel_unassign_post

import (
	"net/http"

	"github.com/gorilla/mux"

	"parcel-service/internal/entities"
	"parcel-service/internal/handlers/rest/response"
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
	trackingNumber := mux.Vars(r)["tracking_number"]

	unassignment, err := h.service.UnassignCourier(r.Context(), trackingNumber)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("courier unassigned",
		logger.NewField("tracking_number", unassignment.TrackingNumber),
		logger.NewField("courier_id", unassignment.CourierID),
	)

	response.JSON(w, h.log, http.StatusOK, response.ParcelAssignmentDTO(entities.ParcelAssignment(*unassignment)))
}
