package handler

import (
	"net/http"
	"strconv"

	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/response"

	"github.com/gorilla/mux"
)

type MonitorHandler struct {
	monitorUsecase usecase.MonitorUsecase
}

func NewMonitorHandler(monitorUsecase usecase.MonitorUsecase) *MonitorHandler {
	return &MonitorHandler{monitorUsecase: monitorUsecase}
}

// GetMonitorData serves one dashboard poll for a user. The optional
// `days` query parameter sizes the window; the usecase defaults it to 7.
func (h *MonitorHandler) GetMonitorData(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			response.BadRequest(w, "Invalid days parameter")
			return
		}
	}

	data, err := h.monitorUsecase.GetMonitorData(r.Context(), userID, days)
	if err != nil {
		response.InternalServerError(w, "Failed to load monitor data")
		return
	}

	response.OK(w, data)
}

func (h *MonitorHandler) GetDeviceStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.monitorUsecase.GetDeviceStatus(r.Context(), mux.Vars(r)["deviceId"])
	if err != nil {
		response.InternalServerError(w, "Failed to get device status")
		return
	}

	response.OK(w, status)
}
