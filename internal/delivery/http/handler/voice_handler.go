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

// maxAudioUploadBytes caps the multipart form held in memory per clone
// request.
const maxAudioUploadBytes = 32 << 20

type VoiceHandler struct {
	voiceUsecase usecase.VoiceUsecase
	validator    *validator.CustomValidator
}

func NewVoiceHandler(voiceUsecase usecase.VoiceUsecase, validator *validator.CustomValidator) *VoiceHandler {
	return &VoiceHandler{
		voiceUsecase: voiceUsecase,
		validator:    validator,
	}
}

// Clone accepts a multipart form: name, referenceText, optional
// ttsModelId, and the reference recording in the "audio" field.
func (h *VoiceHandler) Clone(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}

	req := dto.VoiceCloneRequest{
		UserID:        userID,
		Name:          r.FormValue("name"),
		ReferenceText: r.FormValue("referenceText"),
		TTSModelID:    r.FormValue("ttsModelId"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		response.BadRequest(w, "Reference audio file is required")
		return
	}
	defer file.Close()

	timbre, err := h.voiceUsecase.Clone(r.Context(), &req, header.Filename, file)
	if err != nil {
		switch err {
		case usecase.ErrUnsupportedAudioFormat, usecase.ErrMissingAudioFile:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to clone voice")
		}
		return
	}

	response.Created(w, "Voice cloned", timbre)
}

func (h *VoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	timbres, err := h.voiceUsecase.List(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to list voices")
		return
	}

	response.OK(w, timbres)
}

func (h *VoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	timbre, err := h.voiceUsecase.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch err {
		case usecase.ErrVoiceNotFound:
			response.NotFound(w, "Voice timbre not found")
		default:
			response.InternalServerError(w, "Failed to get voice")
		}
		return
	}

	response.OK(w, timbre)
}

func (h *VoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.voiceUsecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		switch err {
		case usecase.ErrVoiceNotFound:
			response.NotFound(w, "Voice timbre not found")
		default:
			response.InternalServerError(w, "Failed to delete voice")
		}
		return
	}

	response.OKMsg(w, "Voice deleted")
}

// TestSynthesis returns a playable clip URL for the given voice.
func (h *VoiceHandler) TestSynthesis(w http.ResponseWriter, r *http.Request) {
	var req dto.TestVoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	audioURL, err := h.voiceUsecase.TestSynthesis(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVoiceNotFound:
			response.NotFound(w, "Voice timbre not found")
		default:
			response.InternalServerError(w, "Failed to synthesize test audio")
		}
		return
	}

	response.OK(w, map[string]string{"audioUrl": audioURL})
}
