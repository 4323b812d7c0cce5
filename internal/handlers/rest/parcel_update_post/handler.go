package parcel_update_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"

	"parcel-service/internal/entities"
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

	var statusUpdateDTO dto.ParcelStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		response.BadRequest(w, h.log, fmt.Errorf("decode request body: %w", err))
		return
	}

	update, err := h.service.AppendUpdate(r.Context(), trackingNumber, entities.ParcelStatusUpdate{
		Status:      entities.ParcelStatus(statusUpdateDTO.Status),
		Location:    pointer.GetString(statusUpdateDTO.Location),
		Description: pointer.GetString(statusUpdateDTO.Description),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("parcel status updated",
		logger.NewField("tracking_number", trackingNumber),
		logger.NewField("status", update.Status.String()),
	)

	response.JSON(w, h.log, http.StatusCreated, response.TrackingUpdateDTO(*update))
}
