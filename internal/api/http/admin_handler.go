package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"carrental-backend/internal/pricing"
	"carrental-backend/internal/service"
)

type AdminHandler struct {
	catalogSvc service.CatalogService
	adminSvc   service.AdminService
}

func NewAdminHandler(catalogSvc service.CatalogService, adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{catalogSvc: catalogSvc, adminSvc: adminSvc}
}

type registerCarRequest struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	DailyRate string `json:"daily_rate,omitempty"` // empty means the category default
}

func (h *AdminHandler) RegisterCar(w http.ResponseWriter, r *http.Request) {
	var req registerCarRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	rate := decimal.Zero
	if req.DailyRate != "" {
		var err error
		rate, err = decimal.NewFromString(req.DailyRate)
		if err != nil {
			http.Error(w, "invalid daily_rate", http.StatusBadRequest)
			return
		}
	}

	car, err := h.catalogSvc.RegisterCar(r.Context(), req.Type, req.Name, rate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *AdminHandler) RemoveCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID32(r)
	if err != nil {
		http.Error(w, "invalid car id", http.StatusBadRequest)
		return
	}

	if err := h.catalogSvc.RemoveCar(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"season": string(h.adminSvc.CurrentSeason())})
}

type setSeasonRequest struct {
	Season string `json:"season"`
}

func (h *AdminHandler) SetSeason(w http.ResponseWriter, r *http.Request) {
	var req setSeasonRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	policy, err := pricing.ParseFeePolicy(req.Season)
	if err != nil {
		writeError(w, err)
		return
	}

	h.adminSvc.SetSeason(policy)
	writeJSON(w, http.StatusOK, map[string]string{"season": string(policy)})
}

func (h *AdminHandler) ListRentalHistory(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	rentals, total, err := h.adminSvc.ListRentalHistory(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rentals":   rentals,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
