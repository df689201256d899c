package api

import (
	"net/http"

	"cargo-tracking-service/internal/auth"
	"cargo-tracking-service/internal/model"
)

func Router(h *Handler, mw *auth.Middleware) http.Handler {
	mux := http.NewServeMux()

	staff := mw.Require(model.RoleAdmin, model.RoleStaff)
	admin := mw.Require(model.RoleAdmin)

	mux.HandleFunc("GET /v1/health", h.Health)

	mux.HandleFunc("POST /v1/auth/login", h.Login)
	mux.HandleFunc("POST /v1/auth/refresh", h.Refresh)
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)

	mux.HandleFunc("POST /v1/packages", staff(h.RegisterPackage))
	mux.HandleFunc("GET /v1/packages", staff(h.ListPackages))
	mux.HandleFunc("GET /v1/packages/{trackingID}", staff(h.GetPackage))
	mux.HandleFunc("PATCH /v1/packages/{trackingID}/status", staff(h.UpdatePackageStatus))

	mux.HandleFunc("GET /v1/admin/countries", staff(h.ListCountries))
	mux.HandleFunc("POST /v1/admin/countries", admin(h.CreateCountry))
	mux.HandleFunc("GET /v1/admin/warehouses", staff(h.ListWarehouses))
	mux.HandleFunc("POST /v1/admin/warehouses", admin(h.CreateWarehouse))
	mux.HandleFunc("GET /v1/admin/boxtypes", staff(h.ListBoxTypes))
	mux.HandleFunc("POST /v1/admin/boxtypes", admin(h.CreateBoxType))
	mux.HandleFunc("GET /v1/admin/users", admin(h.ListUsers))
	mux.HandleFunc("POST /v1/admin/users", admin(h.CreateUser))

	mux.HandleFunc("GET /v1/reports/packages.csv", staff(h.PackagesCSV))
	mux.HandleFunc("GET /v1/reports/warehouse-stats", staff(h.WarehouseStats))

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("cargo-tracking-service"))
	})

	return loggingMiddleware(mux)
}
