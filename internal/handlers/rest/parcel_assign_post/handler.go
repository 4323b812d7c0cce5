package parcel_assign_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"parcel-service/internal/generated/dto"
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

	var assignRequestDTO dto.ParcelAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignRequestDTO)
	if err != nil {
		response.BadRequest(w, h.log, fmt.Errorf("decode request body: %w", err))
		return
	}

	assignment, err := h.service.AssignCourier(r.Context(), trackingNumber, assignRequestDTO.CourierId)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("courier assigned",
		logger.NewField("tracking_number", assignment.TrackingNumber),
		logger.NewField("courier_id", assignment.CourierID),
	)

	response.JSON(w, h.log, http.StatusOK, response.ParcelAssignmentDTO(*assignment))
}
