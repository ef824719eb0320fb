package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"drivesync-backend/internal/images"
	"drivesync-backend/internal/security"
	"drivesync-backend/internal/service"
)

// RouterDeps carries everything the HTTP layer needs. The db handle is
// only used by the health check.
type RouterDeps struct {
	DB         *sql.DB
	Tokens     security.TokenManager
	AuthSvc    service.AuthService
	UserSvc    service.UserService
	CarSvc     service.CarService
	RentalSvc  service.RentalService
	AdminSvc   service.AdminService
	ImageCache *images.Cache
}

// NewRouter wires all routes under /api/v1. Auth routes are public,
// everything else requires a valid access token, and the admin
// subtree additionally requires the admin role.
func NewRouter(deps RouterDeps) http.Handler {
	authHandler := NewAuthHandler(deps.AuthSvc)
	userHandler := NewUserHandler(deps.UserSvc)
	carHandler := NewCarHandler(deps.CarSvc, deps.ImageCache)
	rentalHandler := NewRentalHandler(deps.RentalSvc)
	adminHandler := NewAdminHandler(deps.AdminSvc)
	authmw := NewAuthMiddleware(deps.Tokens)

	r := mux.NewRouter()
	r.Use(RequestID, Logging, Recover)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := deps.DB.PingContext(req.Context()); err != nil {
			respondError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(authmw.Authenticate)

	authed.HandleFunc("/users/me", userHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", userHandler.CompleteProfile).Methods(http.MethodPut)

	authed.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/cars/{id:[0-9]+}", carHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/cars/{id:[0-9]+}/image", carHandler.Image).Methods(http.MethodGet)

	authed.HandleFunc("/rentals/quote", rentalHandler.Quote).Methods(http.MethodPost)
	authed.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/rentals", rentalHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/rentals/{id:[0-9]+}/car-change", rentalHandler.RequestCarChange).Methods(http.MethodPost)

	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(authmw.RequireAdmin)

	admin.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/cars/{id:[0-9]+}/status", carHandler.SetStatus).Methods(http.MethodPut)
	admin.HandleFunc("/requests", adminHandler.ListPendingRequests).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{id:[0-9]+}/approve", adminHandler.ApproveRequest).Methods(http.MethodPost)
	admin.HandleFunc("/requests/{id:[0-9]+}/reject", adminHandler.RejectRequest).Methods(http.MethodPost)

	return r
}
