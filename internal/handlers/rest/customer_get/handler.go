package customer_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/customer"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.NotFound(w, h.log, customer.ErrCustomerNotFound.Error())
		return
	}

	customerEntity, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidCustomerID) {
			response.NotFound(w, h.log, customer.ErrCustomerNotFound.Error())
			return
		}
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, response.CustomerDTO(*customerEntity))
}
