package parcel_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AlekSi/pointer"

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
	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		response.BadRequest(w, h.log, fmt.Errorf("decode request body: %w", err))
		return
	}

	parcel, err := h.service.CreateParcel(r.Context(), toParcelCreate(parcelCreateDTO))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.ParcelDTO(*parcel))
}

func toParcelCreate(in dto.ParcelCreate) entities.ParcelCreate {
	create := entities.ParcelCreate{
		Sender:            toCustomerRef(in.Sender),
		Recipient:         toCustomerRef(in.Recipient),
		CourierID:         in.CourierId,
		Weight:            in.Weight,
		Length:            pointer.GetFloat64(in.Length),
		Width:             pointer.GetFloat64(in.Width),
		Height:            pointer.GetFloat64(in.Height),
		EstimatedDelivery: in.EstimatedDelivery,
		Description:       pointer.GetString(in.Description),
	}

	if in.Length == nil {
		create.Length = entities.DefaultLength
	}
	if in.Width == nil {
		create.Width = entities.DefaultWidth
	}
	if in.Height == nil {
		create.Height = entities.DefaultHeight
	}
	if in.ServiceType != nil {
		create.ServiceType = entities.ServiceType(*in.ServiceType)
	}

	return create
}

// toCustomerRef ссылка по id и/или по контактам, сервис проверит, что задан ровно один вариант.
func toCustomerRef(in dto.CustomerRef) entities.CustomerRef {
	var ref entities.CustomerRef
	ref.ID = in.Id

	if in.Name != nil || in.Email != nil || in.Phone != nil || in.Address != nil {
		ref.Details = &entities.CustomerDetails{
			Name:    pointer.GetString(in.Name),
			Email:   pointer.GetString(in.Email),
			Phone:   pointer.GetString(in.Phone),
			Address: pointer.GetString(in.Address),
		}
	}

	return ref
}
