package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/repository"
	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/response"
	"eldercare-manager-api/pkg/validator"

	"github.com/gorilla/mux"
)

type HealthDataHandler struct {
	healthDataUsecase usecase.HealthDataUsecase
	validator         *validator.CustomValidator
}

func NewHealthDataHandler(healthDataUsecase usecase.HealthDataUsecase, validator *validator.CustomValidator) *HealthDataHandler {
	return &HealthDataHandler{
		healthDataUsecase: healthDataUsecase,
		validator:         validator,
	}
}

func (h *HealthDataHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHealthDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	data, err := h.healthDataUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDeviceNotFound:
			response.NotFound(w, "Health device not found")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to save health data")
		}
		return
	}

	response.Created(w, "Health data saved", data)
}

func (h *HealthDataHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateHealthDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	data, err := h.healthDataUsecase.Update(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHealthDataNotFound:
			response.NotFound(w, "Health data not found")
		default:
			response.InternalServerError(w, "Failed to update health data")
		}
		return
	}

	response.OK(w, data)
}

func (h *HealthDataHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	data, err := h.healthDataUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrHealthDataNotFound:
			response.NotFound(w, "Health data not found")
		default:
			response.InternalServerError(w, "Failed to get health data")
		}
		return
	}

	response.OK(w, data)
}

// Delete removes samples by id list.
func (h *HealthDataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []int64 `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		response.BadRequest(w, "ids is required")
		return
	}

	if err := h.healthDataUsecase.DeleteByIDs(r.Context(), req.IDs); err != nil {
		response.InternalServerError(w, "Failed to delete health data")
		return
	}

	response.OKMsg(w, "Health data deleted")
}

func (h *HealthDataHandler) Page(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.HealthDataFilter{
		DataSource: query.Get("dataSource"),
	}
	filter.UserID, _ = strconv.ParseInt(query.Get("userId"), 10, 64)
	filter.DeviceID, _ = strconv.ParseInt(query.Get("deviceId"), 10, 64)
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	page, err := h.healthDataUsecase.Page(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to page health data")
		return
	}

	response.OK(w, page)
}

func (h *HealthDataHandler) GetByDateRange(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	list, err := h.healthDataUsecase.GetByDateRange(r.Context(), userID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to query health data")
		}
		return
	}

	response.OK(w, list)
}

func (h *HealthDataHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	data, err := h.healthDataUsecase.GetLatest(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrHealthDataNotFound:
			response.NotFound(w, "No health data for user")
		default:
			response.InternalServerError(w, "Failed to get latest health data")
		}
		return
	}

	response.OK(w, data)
}

func (h *HealthDataHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	report, err := h.healthDataUsecase.GenerateHealthReport(r.Context(), userID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to generate health report")
		}
		return
	}

	response.OK(w, report)
}

// pathID reads a numeric mux path variable.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
