package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"polar-backend/internal/config"
	"polar-backend/internal/handlers"
	"polar-backend/internal/middleware"
)

func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	authHandler *handlers.AuthHandler,
	sessionHandler *handlers.SessionHandler,
	userHandler *handlers.UserHandler,
	shipmentHandler *handlers.ShipmentHandler,
	flightHandler *handlers.FlightHandler,
	equipmentHandler *handlers.EquipmentHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	monitoringHandler *handlers.MonitoringHandler,
	eventsHandler http.HandlerFunc,
	authMiddleware *middleware.AuthMiddleware,
) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.MetricsMiddleware)

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	// Live store events for the dashboard
	r.HandleFunc("/ws/events", eventsHandler).Methods("GET")

	// Session state is readable before login (theme on the login screen)
	sessionAPI := r.PathPrefix("/api/session").Subrouter()
	sessionAPI.HandleFunc("", sessionHandler.GetSession).Methods("GET")
	sessionAPI.HandleFunc("/section", sessionHandler.SetSection).Methods("PUT")
	sessionAPI.HandleFunc("/sidebar", sessionHandler.SetSidebar).Methods("PUT")
	sessionAPI.HandleFunc("/theme", sessionHandler.ToggleTheme).Methods("POST")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Reloading the seed discards every edit, so it needs an acting user
	api.HandleFunc("/session/reset", sessionHandler.Reset).Methods("POST")

	// Accounts
	api.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	api.HandleFunc("/accounts", userHandler.Accounts).Methods("GET")
	api.HandleFunc("/logs", userHandler.ListLogs).Methods("GET")

	// Shipments (planning table)
	api.HandleFunc("/shipments", shipmentHandler.ListShipments).Methods("GET")
	api.HandleFunc("/shipments", shipmentHandler.CreateShipment).Methods("POST")
	api.HandleFunc("/shipments/{id}", shipmentHandler.GetShipment).Methods("GET")
	api.HandleFunc("/shipments/{id}", shipmentHandler.UpdateShipment).Methods("PATCH")
	api.HandleFunc("/shipments/{id}", shipmentHandler.DeleteShipment).Methods("DELETE")
	api.HandleFunc("/shipments/{id}/flight", shipmentHandler.MoveShipment).Methods("PUT")

	// Client requests
	api.HandleFunc("/requests", shipmentHandler.ListRequests).Methods("GET")
	api.HandleFunc("/requests", shipmentHandler.CreateRequest).Methods("POST")

	// Flights
	api.HandleFunc("/flights", flightHandler.ListFlights).Methods("GET")
	api.HandleFunc("/flights", flightHandler.CreateFlight).Methods("POST")
	api.HandleFunc("/flights/board", flightHandler.Board).Methods("GET")
	api.HandleFunc("/flights/{id}", flightHandler.UpdateFlight).Methods("PATCH")
	api.HandleFunc("/flights/{id}", flightHandler.DeleteFlight).Methods("DELETE")

	// Equipment
	api.HandleFunc("/equipment", equipmentHandler.ListEquipment).Methods("GET")
	api.HandleFunc("/equipment", equipmentHandler.CreateEquipment).Methods("POST")
	api.HandleFunc("/equipment/{id}", equipmentHandler.UpdateEquipment).Methods("PATCH")
	api.HandleFunc("/equipment/{id}", equipmentHandler.DeleteEquipment).Methods("DELETE")

	// Dashboard and reports
	api.HandleFunc("/dashboard", reportHandler.Dashboard).Methods("GET")
	api.HandleFunc("/reports/summary", reportHandler.Summary).Methods("GET")
	api.HandleFunc("/reports/summary/pdf", reportHandler.SummaryPDF).Methods("GET")
	api.HandleFunc("/reports/shipments/csv", reportHandler.ShipmentsCSV).Methods("GET")
	api.HandleFunc("/reports/equipment/csv", reportHandler.EquipmentCSV).Methods("GET")
	api.HandleFunc("/reports/planning/csv", reportHandler.PlanningCSV).Methods("GET")

	// Monitoring
	api.HandleFunc("/monitoring/system", monitoringHandler.GetSystemStats).Methods("GET")

	// Health endpoints (no auth required)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return middleware.NewCORS(cfg)(r)
}
