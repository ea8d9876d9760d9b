package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/api/http/middleware"
	"carrental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
	adminSvc  service.AdminService
}

func NewRentalHandler(rentalSvc service.RentalService, adminSvc service.AdminService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, adminSvc: adminSvc}
}

type rentRequest struct {
	CarID   int32    `json:"car_id"`
	Days    int32    `json:"days"`
	Options []string `json:"options"`
}

// Rent starts a rental under the season in force at request time. The fee
// policy is resolved here so that a mid-rental season change never touches
// an already-priced rental.
func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req rentRequest
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	policy := h.adminSvc.CurrentSeason()
	rental, err := h.rentalSvc.Rent(r.Context(), claims.AccountID, req.CarID, req.Days, req.Options, policy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := pathID64(r)
	if err != nil {
		http.Error(w, "invalid rental id", http.StatusBadRequest)
		return
	}

	// Only the renter may settle a rental; GetRental hides other accounts'
	// rentals behind a not-found.
	if _, err := h.rentalSvc.GetRental(r.Context(), claims.AccountID, id); err != nil {
		writeError(w, err)
		return
	}

	settled, err := h.rentalSvc.Return(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settled)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	id, err := pathID64(r)
	if err != nil {
		http.Error(w, "invalid rental id", http.StatusBadRequest)
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), claims.AccountID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	page, pageSize := pagination(r)
	rentals, total, err := h.rentalSvc.ListMyRentals(r.Context(), claims.AccountID, page, pageSize)
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

func pathID64(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
