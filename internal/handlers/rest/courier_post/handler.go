package courier_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
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
	var courierCreateDTO dto.CourierCreate
	err := json.NewDecoder(r.Body).Decode(&courierCreateDTO)
	if err != nil {
		response.BadRequest(w, h.log, fmt.Errorf("decode request body: %w", err))
		return
	}

	courierModifyEntity := entities.CourierModify{
		ID:      &courierCreateDTO.Id,
		Name:    &courierCreateDTO.Name,
		Email:   &courierCreateDTO.Email,
		Phone:   &courierCreateDTO.Phone,
		Vehicle: &courierCreateDTO.Vehicle,
	}

	courierEntity, err := h.service.CreateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.CourierDTO(*courierEntity))
}
