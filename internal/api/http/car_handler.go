package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

type CarHandler struct {
	catalogSvc service.CatalogService
}

func NewCarHandler(catalogSvc service.CatalogService) *CarHandler {
	return &CarHandler{catalogSvc: catalogSvc}
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.catalogSvc.ListCars
	if r.URL.Query().Get("available") == "true" {
		list = h.catalogSvc.ListAvailableCars
	}

	cars, err := list(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"cars": cars})
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID32(r)
	if err != nil {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	car, err := h.catalogSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// Options lists the rentable option names and their per-day surcharges.
func (h *CarHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"options": pricing.OptionNames()})
}

func pathID32(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}
