package http

import (
	"net/http"

	"eldercare-manager-api/internal/delivery/http/handler"
	"eldercare-manager-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	healthHandler    *handler.HealthDataHandler
	deviceHandler    *handler.HealthDeviceHandler
	reminderHandler  *handler.ReminderHandler
	emergencyHandler *handler.EmergencyCallHandler
	configHandler    *handler.SystemConfigHandler
	monitorHandler   *handler.MonitorHandler
	agentHandler     *handler.AgentHandler
	voiceHandler     *handler.VoiceHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthDataHandler,
	deviceHandler *handler.HealthDeviceHandler,
	reminderHandler *handler.ReminderHandler,
	emergencyHandler *handler.EmergencyCallHandler,
	configHandler *handler.SystemConfigHandler,
	monitorHandler *handler.MonitorHandler,
	agentHandler *handler.AgentHandler,
	voiceHandler *handler.VoiceHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		healthHandler:    healthHandler,
		deviceHandler:    deviceHandler,
		reminderHandler:  reminderHandler,
		emergencyHandler: emergencyHandler,
		configHandler:    configHandler,
		monitorHandler:   monitorHandler,
		agentHandler:     agentHandler,
		voiceHandler:     voiceHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/eldercare").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/status", r.authHandler.Status).Methods(http.MethodGet)

	// Device-facing ingest and scheduler polls skip per-user auth:
	// wearables and the reminder scheduler authenticate at the gateway.
	api.HandleFunc("/health-data", r.healthHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/reminder/pending", r.reminderHandler.GetPendingDue).Methods(http.MethodGet)
	api.HandleFunc("/emergency/trigger", r.emergencyHandler.Trigger).Methods(http.MethodPost)
	api.HandleFunc("/config/public", r.configHandler.GetPublic).Methods(http.MethodGet)

	// Everything else requires a logged-in caregiver.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Health data
	protected.HandleFunc("/health-data", r.healthHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/health-data", r.healthHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/health-data/page", r.healthHandler.Page).Methods(http.MethodGet)
	protected.HandleFunc("/health-data/user/{userId}/range", r.healthHandler.GetByDateRange).Methods(http.MethodGet)
	protected.HandleFunc("/health-data/user/{userId}/latest", r.healthHandler.GetLatest).Methods(http.MethodGet)
	protected.HandleFunc("/health-data/user/{userId}/report", r.healthHandler.GenerateReport).Methods(http.MethodGet)
	protected.HandleFunc("/health-data/{id}", r.healthHandler.GetByID).Methods(http.MethodGet)

	// Health devices
	protected.HandleFunc("/device/pair", r.deviceHandler.Pair).Methods(http.MethodPost)
	protected.HandleFunc("/device/mac/{mac}", r.deviceHandler.GetByMacAddress).Methods(http.MethodGet)
	protected.HandleFunc("/device/user/{userId}/connected", r.deviceHandler.GetConnectedDevices).Methods(http.MethodGet)
	protected.HandleFunc("/device/user/{userId}", r.deviceHandler.GetUserDevices).Methods(http.MethodGet)
	protected.HandleFunc("/device/{id}/connect", r.deviceHandler.Connect).Methods(http.MethodPost)
	protected.HandleFunc("/device/{id}/disconnect", r.deviceHandler.Disconnect).Methods(http.MethodPost)
	protected.HandleFunc("/device/{id}/sync", r.deviceHandler.Sync).Methods(http.MethodPost)
	protected.HandleFunc("/device/{id}/status", r.deviceHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/device/{id}", r.deviceHandler.GetByID).Methods(http.MethodGet)

	// Reminders
	protected.HandleFunc("/reminder", r.reminderHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/reminder/user/{userId}/type/{type}", r.reminderHandler.GetByType).Methods(http.MethodGet)
	protected.HandleFunc("/reminder/user/{userId}/today", r.reminderHandler.GetToday).Methods(http.MethodGet)
	protected.HandleFunc("/reminder/user/{userId}/window", r.reminderHandler.GetWindow).Methods(http.MethodGet)
	protected.HandleFunc("/reminder/user/{userId}", r.reminderHandler.GetUserReminders).Methods(http.MethodGet)
	protected.HandleFunc("/reminder/{id}/complete", r.reminderHandler.Complete).Methods(http.MethodPost)
	protected.HandleFunc("/reminder/{id}/snooze", r.reminderHandler.Snooze).Methods(http.MethodPost)
	protected.HandleFunc("/reminder/{id}/trigger", r.reminderHandler.Trigger).Methods(http.MethodPost)
	protected.HandleFunc("/reminder/{id}/pause", r.reminderHandler.Pause).Methods(http.MethodPost)
	protected.HandleFunc("/reminder/{id}/resume", r.reminderHandler.Resume).Methods(http.MethodPost)
	protected.HandleFunc("/reminder/{id}", r.reminderHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/reminder/{id}", r.reminderHandler.Delete).Methods(http.MethodDelete)

	// Emergency calls
	protected.HandleFunc("/emergency/unresolved", r.emergencyHandler.GetUnresolved).Methods(http.MethodGet)
	protected.HandleFunc("/emergency/user/{userId}/severity/{level}", r.emergencyHandler.GetBySeverity).Methods(http.MethodGet)
	protected.HandleFunc("/emergency/user/{userId}/statistics", r.emergencyHandler.Statistics).Methods(http.MethodGet)
	protected.HandleFunc("/emergency/user/{userId}", r.emergencyHandler.GetUserCalls).Methods(http.MethodGet)
	protected.HandleFunc("/emergency/{id}/handle", r.emergencyHandler.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/emergency/{id}/auto-call", r.emergencyHandler.AutoCall).Methods(http.MethodPost)
	protected.HandleFunc("/emergency/{id}/false-alarm", r.emergencyHandler.FalseAlarm).Methods(http.MethodPost)
	protected.HandleFunc("/emergency/{id}/status", r.emergencyHandler.UpdateStatus).Methods(http.MethodPut)
	protected.HandleFunc("/emergency/{id}", r.emergencyHandler.GetByID).Methods(http.MethodGet)

	// System config
	protected.HandleFunc("/config/batch", r.configHandler.BatchUpdate).Methods(http.MethodPost)
	protected.HandleFunc("/config/category/{category}", r.configHandler.GetByCategory).Methods(http.MethodGet)
	protected.HandleFunc("/config", r.configHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/config/{key}", r.configHandler.GetByKey).Methods(http.MethodGet)
	protected.HandleFunc("/config/{key}", r.configHandler.UpdateValue).Methods(http.MethodPut)

	// Monitor
	protected.HandleFunc("/monitor/device/{deviceId}/status", r.monitorHandler.GetDeviceStatus).Methods(http.MethodGet)
	protected.HandleFunc("/monitor/{userId}", r.monitorHandler.GetMonitorData).Methods(http.MethodGet)

	// Agents
	protected.HandleFunc("/agent/list", r.agentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/agent/{id}/voice", r.agentHandler.UpdateVoice).Methods(http.MethodPut)
	protected.HandleFunc("/agent/{id}/default", r.agentHandler.SetDefault).Methods(http.MethodPost)
	protected.HandleFunc("/agent/{id}", r.agentHandler.GetByID).Methods(http.MethodGet)

	// Voice cloning
	protected.HandleFunc("/voice/clone", r.voiceHandler.Clone).Methods(http.MethodPost)
	protected.HandleFunc("/voice/list", r.voiceHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/voice/test", r.voiceHandler.TestSynthesis).Methods(http.MethodPost)
	protected.HandleFunc("/voice/{id}", r.voiceHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/voice/{id}", r.voiceHandler.Delete).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
