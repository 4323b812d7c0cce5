package customer_post

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

// ServeHTTP клиент с теми же контактами не дублируется, возвращается существующая запись.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var customerCreateDTO dto.CustomerCreate
	err := json.NewDecoder(r.Body).Decode(&customerCreateDTO)
	if err != nil {
		response.BadRequest(w, h.log, fmt.Errorf("decode request body: %w", err))
		return
	}

	customerEntity, err := h.service.CreateCustomer(r.Context(), entities.CustomerDetails{
		Name:    customerCreateDTO.Name,
		Email:   customerCreateDTO.Email,
		Phone:   customerCreateDTO.Phone,
		Address: customerCreateDTO.Address,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, response.CustomerDTO(*customerEntity))
}
