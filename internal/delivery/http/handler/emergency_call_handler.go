package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/response"
	"eldercare-manager-api/pkg/validator"

	"github.com/gorilla/mux"
)

type EmergencyCallHandler struct {
	emergencyUsecase usecase.EmergencyCallUsecase
	validator        *validator.CustomValidator
}

func NewEmergencyCallHandler(emergencyUsecase usecase.EmergencyCallUsecase, validator *validator.CustomValidator) *EmergencyCallHandler {
	return &EmergencyCallHandler{
		emergencyUsecase: emergencyUsecase,
		validator:        validator,
	}
}

func (h *EmergencyCallHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	var req dto.TriggerEmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	call, err := h.emergencyUsecase.Trigger(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidSeverity, usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to trigger emergency")
		}
		return
	}

	response.Created(w, "Emergency triggered", call)
}

func (h *EmergencyCallHandler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	var req dto.HandleEmergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	call, err := h.emergencyUsecase.Handle(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to handle emergency")
		return
	}

	response.OK(w, call)
}

func (h *EmergencyCallHandler) AutoCall(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	call, err := h.emergencyUsecase.AutoCall(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrNoCallNumbers:
			response.BadRequest(w, err.Error())
		default:
			h.writeError(w, err, "Failed to auto-call")
		}
		return
	}

	response.OK(w, call)
}

func (h *EmergencyCallHandler) FalseAlarm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	var req dto.FalseAlarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	call, err := h.emergencyUsecase.FalseAlarm(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "Failed to mark false alarm")
		return
	}

	response.OK(w, call)
}

func (h *EmergencyCallHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	var req dto.UpdateEmergencyStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	call, err := h.emergencyUsecase.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.writeError(w, err, "Failed to update emergency status")
		return
	}

	response.OK(w, call)
}

func (h *EmergencyCallHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	call, err := h.emergencyUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get emergency")
		return
	}

	response.OK(w, call)
}

func (h *EmergencyCallHandler) GetUserCalls(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	calls, err := h.emergencyUsecase.GetUserCalls(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list emergencies")
		return
	}

	response.OK(w, calls)
}

func (h *EmergencyCallHandler) GetUnresolved(w http.ResponseWriter, r *http.Request) {
	calls, err := h.emergencyUsecase.GetUnresolved(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list unresolved emergencies")
		return
	}

	response.OK(w, calls)
}

func (h *EmergencyCallHandler) GetBySeverity(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	severity, err := strconv.Atoi(mux.Vars(r)["level"])
	if err != nil {
		response.BadRequest(w, "Invalid severity level")
		return
	}

	calls, err := h.emergencyUsecase.GetBySeverity(r.Context(), userID, severity)
	if err != nil {
		switch err {
		case usecase.ErrInvalidSeverity:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to list emergencies")
		}
		return
	}

	response.OK(w, calls)
}

func (h *EmergencyCallHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	stats, err := h.emergencyUsecase.Statistics(r.Context(), userID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to compute statistics")
		}
		return
	}

	response.OK(w, stats)
}

func (h *EmergencyCallHandler) writeError(w http.ResponseWriter, err error, failMsg string) {
	switch err {
	case usecase.ErrEmergencyNotFound:
		response.NotFound(w, "Emergency call not found")
	case usecase.ErrEmergencyAlreadyResolved:
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.InternalServerError(w, failMsg)
	}
}
