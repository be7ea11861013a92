package handler

import (
	"encoding/json"
	"net/http"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/delivery/http/middleware"
	"eldercare-manager-api/internal/usecase"
	"eldercare-manager-api/pkg/response"
	"eldercare-manager-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AgentHandler struct {
	agentUsecase usecase.AgentUsecase
	validator    *validator.CustomValidator
}

func NewAgentHandler(agentUsecase usecase.AgentUsecase, validator *validator.CustomValidator) *AgentHandler {
	return &AgentHandler{
		agentUsecase: agentUsecase,
		validator:    validator,
	}
}

// List returns the authenticated user's agents.
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	agents, err := h.agentUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list agents")
		return
	}

	response.OK(w, agents)
}

func (h *AgentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	agent, err := h.agentUsecase.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrAgentNotFound:
			response.NotFound(w, "Agent not found")
		default:
			response.InternalServerError(w, "Failed to get agent")
		}
		return
	}

	response.OK(w, agent)
}

func (h *AgentHandler) UpdateVoice(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAgentVoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	agent, err := h.agentUsecase.UpdateVoice(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch err {
		case usecase.ErrAgentNotFound:
			response.NotFound(w, "Agent not found")
		default:
			response.InternalServerError(w, "Failed to update agent voice")
		}
		return
	}

	response.OK(w, agent)
}

func (h *AgentHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.agentUsecase.SetDefaultAgent(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrAgentNotFound:
			response.NotFound(w, "Agent not found")
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to set default agent")
		}
		return
	}

	response.OKMsg(w, "Default agent updated")
}
