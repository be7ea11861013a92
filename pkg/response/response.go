package response

import (
	"encoding/json"
	"net/http"
)

// Result is the uniform envelope returned by every endpoint.
// Code 0 means success; any other value carries the failure message in Msg.
type Result struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

const (
	CodeOK    = 0
	CodeError = 1
)

func JSON(w http.ResponseWriter, statusCode int, result Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(result)
}

func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, Result{Code: CodeOK, Data: data})
}

func OKMsg(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, Result{Code: CodeOK, Msg: msg})
}

func Created(w http.ResponseWriter, msg string, data interface{}) {
	JSON(w, http.StatusCreated, Result{Code: CodeOK, Msg: msg, Data: data})
}

func Error(w http.ResponseWriter, statusCode int, msg string) {
	JSON(w, statusCode, Result{Code: CodeError, Msg: msg})
}

func BadRequest(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "Invalid request"
	}
	Error(w, http.StatusBadRequest, msg)
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Result{Code: CodeError, Msg: "Validation failed", Data: errors})
}

func Unauthorized(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, msg)
}

func NotFound(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "Resource not found"
	}
	Error(w, http.StatusNotFound, msg)
}

func InternalServerError(w http.ResponseWriter, msg string) {
	if msg == "" {
		msg = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, msg)
}
