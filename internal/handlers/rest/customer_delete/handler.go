package customer_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"parcel-service/internal/handlers/rest/response"
	"parcel-service/internal/service/customer"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.NotFound(w, h.log, customer.ErrCustomerNotFound.Error())
		return
	}

	err = h.service.DeleteCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, customer.ErrInvalidCustomerID) {
			response.NotFound(w, h.log, customer.ErrCustomerNotFound.Error())
			return
		}
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("customer deleted", logger.NewField("customer_id", id))

	w.WriteHeader(http.StatusNoContent)
}
