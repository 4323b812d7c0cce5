package parcels_get

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

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
	query := r.URL.Query()

	var filter entities.ParcelFilter
	if query.Has("status") {
		status := entities.ParcelStatus(query.Get("status"))
		filter.Status = &status
	}
	if query.Has("courier_id") {
		courierID := query.Get("courier_id")
		filter.CourierID = &courierID
	}

	page, err := parsePage(query)
	if err != nil {
		response.BadRequest(w, h.log, err)
		return
	}

	list, err := h.service.ListParcels(r.Context(), filter, page)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.ParcelList{
		Parcels:     response.ParcelsDTO(list.Parcels),
		Total:       int64(list.Total),
		Pages:       int64(list.Pages),
		CurrentPage: int64(list.CurrentPage),
	})
}

// parsePage ноль означает значение по умолчанию, его подставит сервис.
func parsePage(query url.Values) (entities.Page, error) {
	var page entities.Page

	for _, param := range []struct {
		name   string
		target *uint64
	}{
		{name: "page", target: &page.Page},
		{name: "per_page", target: &page.PerPage},
	} {
		if !query.Has(param.name) {
			continue
		}

		value, err := strconv.ParseUint(query.Get(param.name), 10, 64)
		if err != nil || value == 0 {
			return page, fmt.Errorf("%s must be a positive integer", param.name)
		}
		*param.target = value
	}

	return page, nil
}
