package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/response"
	"eldercare-manager-api/pkg/validator"

	"github.com/gorilla/mux"
)

type HealthDeviceHandler struct {
	deviceUsecase usecase.HealthDeviceUsecase
	validator     *validator.CustomValidator
}

func NewHealthDeviceHandler(deviceUsecase usecase.HealthDeviceUsecase, validator *validator.CustomValidator) *HealthDeviceHandler {
	return &HealthDeviceHandler{
		deviceUsecase: deviceUsecase,
		validator:     validator,
	}
}

func (h *HealthDeviceHandler) Pair(w http.ResponseWriter, r *http.Request) {
	var req dto.PairDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	device, err := h.deviceUsecase.Pair(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrMacAlreadyBound:
			response.Error(w, http.StatusConflict, "Mac address already bound to a device")
		default:
			response.InternalServerError(w, "Failed to pair device")
		}
		return
	}

	response.Created(w, "Device paired", device)
}

func (h *HealthDeviceHandler) Connect(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.deviceUsecase.Connect)
}

func (h *HealthDeviceHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.deviceUsecase.Disconnect)
}

func (h *HealthDeviceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.deviceUsecase.Sync)
}

func (h *HealthDeviceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	var req dto.UpdateDeviceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	device, err := h.deviceUsecase.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDeviceNotFound:
			response.NotFound(w, "Health device not found")
		default:
			response.InternalServerError(w, "Failed to update device status")
		}
		return
	}

	response.OK(w, device)
}

func (h *HealthDeviceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	device, err := h.deviceUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDeviceNotFound:
			response.NotFound(w, "Health device not found")
		default:
			response.InternalServerError(w, "Failed to get device")
		}
		return
	}

	response.OK(w, device)
}

func (h *HealthDeviceHandler) GetUserDevices(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	devices, err := h.deviceUsecase.GetUserDevices(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list devices")
		return
	}

	response.OK(w, devices)
}

func (h *HealthDeviceHandler) GetConnectedDevices(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	devices, err := h.deviceUsecase.GetConnectedDevices(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list connected devices")
		return
	}

	response.OK(w, devices)
}

func (h *HealthDeviceHandler) GetByMacAddress(w http.ResponseWriter, r *http.Request) {
	mac := mux.Vars(r)["mac"]

	device, err := h.deviceUsecase.GetByMacAddress(r.Context(), mac)
	if err != nil {
		switch err {
		case usecase.ErrDeviceNotFound:
			response.NotFound(w, "Health device not found")
		default:
			response.InternalServerError(w, "Failed to find device")
		}
		return
	}

	response.OK(w, device)
}

func (h *HealthDeviceHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (*dto.DeviceResponse, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	device, err := op(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDeviceNotFound:
			response.NotFound(w, "Health device not found")
		default:
			response.InternalServerError(w, "Failed to update device")
		}
		return
	}

	response.OK(w, device)
}
