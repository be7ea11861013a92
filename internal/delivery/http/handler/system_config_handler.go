package handler

import (
	"encoding/json"
	"net/http"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/response"
	"eldercare-manager-api/pkg/validator"

	"github.com/gorilla/mux"
)

type SystemConfigHandler struct {
	configUsecase usecase.SystemConfigUsecase
	validator     *validator.CustomValidator
}

func NewSystemConfigHandler(configUsecase usecase.SystemConfigUsecase, validator *validator.CustomValidator) *SystemConfigHandler {
	return &SystemConfigHandler{
		configUsecase: configUsecase,
		validator:     validator,
	}
}

func (h *SystemConfigHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cfg, err := h.configUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrConfigKeyExists:
			response.Error(w, http.StatusConflict, "Config key already exists")
		case usecase.ErrInvalidConfigValue:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create config")
		}
		return
	}

	response.Created(w, "Config created", cfg)
}

func (h *SystemConfigHandler) GetByKey(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configUsecase.GetByKey(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		switch err {
		case usecase.ErrConfigNotFound:
			response.NotFound(w, "Config key not found")
		default:
			response.InternalServerError(w, "Failed to get config")
		}
		return
	}

	response.OK(w, cfg)
}

func (h *SystemConfigHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configUsecase.GetByCategory(r.Context(), mux.Vars(r)["category"])
	if err != nil {
		response.InternalServerError(w, "Failed to list configs")
		return
	}

	response.OK(w, configs)
}

func (h *SystemConfigHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configUsecase.GetPublic(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list public configs")
		return
	}

	response.OK(w, configs)
}

func (h *SystemConfigHandler) UpdateValue(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateConfigValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cfg, err := h.configUsecase.UpdateValue(r.Context(), mux.Vars(r)["key"], req.ConfigValue)
	if err != nil {
		switch err {
		case usecase.ErrConfigNotFound:
			response.NotFound(w, "Config key not found")
		case usecase.ErrInvalidConfigValue:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update config")
		}
		return
	}

	response.OK(w, cfg)
}

// BatchUpdate is best-effort: the response reports keys that failed while
// the rest stay applied.
func (h *SystemConfigHandler) BatchUpdate(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchUpdateConfigsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.configUsecase.BatchUpdate(r.Context(), req.Configs)
	if err != nil {
		response.InternalServerError(w, "Failed to update configs")
		return
	}

	response.OK(w, result)
}
