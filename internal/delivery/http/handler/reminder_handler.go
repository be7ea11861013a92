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

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reminder, err := h.reminderUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create reminder")
		}
		return
	}

	response.Created(w, "Reminder created", reminder)
}

func (h *ReminderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	reminder, err := h.reminderUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to get reminder")
		return
	}

	response.OK(w, reminder)
}

func (h *ReminderHandler) GetUserReminders(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	reminders, err := h.reminderUsecase.GetUserReminders(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list reminders")
		return
	}

	response.OK(w, reminders)
}

func (h *ReminderHandler) GetByType(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	reminders, err := h.reminderUsecase.GetByType(r.Context(), userID, mux.Vars(r)["type"])
	if err != nil {
		response.InternalServerError(w, "Failed to list reminders")
		return
	}

	response.OK(w, reminders)
}

func (h *ReminderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reminderUsecase.Complete, "Failed to complete reminder")
}

func (h *ReminderHandler) Snooze(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	var req dto.SnoozeReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reminder, err := h.reminderUsecase.Snooze(r.Context(), id, req.Minutes)
	if err != nil {
		h.writeError(w, err, "Failed to snooze reminder")
		return
	}

	response.OK(w, reminder)
}

func (h *ReminderHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reminderUsecase.Trigger, "Failed to trigger reminder")
}

func (h *ReminderHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reminderUsecase.Pause, "Failed to pause reminder")
}

func (h *ReminderHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.reminderUsecase.Resume, "Failed to resume reminder")
}

// GetPendingDue serves the external reminder scheduler's poll.
func (h *ReminderHandler) GetPendingDue(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.GetPendingDue(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to query due reminders")
		return
	}

	response.OK(w, reminders)
}

func (h *ReminderHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	reminders, err := h.reminderUsecase.GetToday(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to query today's reminders")
		return
	}

	response.OK(w, reminders)
}

func (h *ReminderHandler) GetWindow(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		response.BadRequest(w, "Invalid user id")
		return
	}

	reminders, err := h.reminderUsecase.GetWindow(r.Context(), userID, r.URL.Query().Get("startDate"), r.URL.Query().Get("endDate"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidDateRange:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to query reminders")
		}
		return
	}

	response.OK(w, reminders)
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	if err := h.reminderUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "Failed to delete reminder")
		return
	}

	response.OKMsg(w, "Reminder deleted")
}

func (h *ReminderHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int64) (*dto.ReminderResponse, error), failMsg string) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid id")
		return
	}

	reminder, err := op(r.Context(), id)
	if err != nil {
		h.writeError(w, err, failMsg)
		return
	}

	response.OK(w, reminder)
}

func (h *ReminderHandler) writeError(w http.ResponseWriter, err error, failMsg string) {
	switch err {
	case usecase.ErrReminderNotFound:
		response.NotFound(w, "Reminder not found")
	case usecase.ErrReminderNotPending, usecase.ErrReminderNotPaused, usecase.ErrReminderFinished:
		response.Error(w, http.StatusConflict, err.Error())
	default:
		response.InternalServerError(w, failMsg)
	}
}
