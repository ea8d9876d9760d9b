package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/api/http/middleware"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

// Router wires every handler onto a gorilla/mux tree. Public routes carry
// signup/login and the car catalog; everything else sits behind the JWT
// middleware, with the admin subtree additionally gated on the admin claim.
type Router struct {
	mux *mux.Router
}

func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	accountSvc service.AccountService,
	catalogSvc service.CatalogService,
	rentalSvc service.RentalService,
	adminSvc service.AdminService,
) *Router {
	auth := middleware.NewAuthenticator(tokens)

	authHandler := NewAuthHandler(authSvc)
	accountHandler := NewAccountHandler(accountSvc)
	carHandler := NewCarHandler(catalogSvc)
	rentalHandler := NewRentalHandler(rentalSvc, adminSvc)
	adminHandler := NewAdminHandler(catalogSvc, adminSvc)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	api.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/cars/options", carHandler.Options).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}", carHandler.Get).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Require)
	protected.HandleFunc("/accounts/me", accountHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/accounts/me", accountHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/accounts/me/card", accountHandler.RegisterCard).Methods(http.MethodPut)
	protected.HandleFunc("/accounts/me", accountHandler.Withdraw).Methods(http.MethodDelete)
	protected.HandleFunc("/rentals", rentalHandler.Rent).Methods(http.MethodPost)
	protected.HandleFunc("/rentals", rentalHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.Return).Methods(http.MethodPost)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/cars", adminHandler.RegisterCar).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id:[0-9]+}", adminHandler.RemoveCar).Methods(http.MethodDelete)
	admin.HandleFunc("/season", adminHandler.GetSeason).Methods(http.MethodGet)
	admin.HandleFunc("/season", adminHandler.SetSeason).Methods(http.MethodPut)
	admin.HandleFunc("/rentals", adminHandler.ListRentalHistory).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return &Router{mux: r}
}

func (rt *Router) Handler() http.Handler {
	return rt.mux
}
