package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/user/inventory_api/services"
)

type ErrorCode struct {
	Code       string
	Message    string
	HTTPStatus int
	ServiceErr error
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

var (
	ErrCodeValidationFailed = ErrorCode{
		Code:       "VALIDATION_FAILED",
		Message:    "Validation failed",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: services.ErrValidation,
	}
	ErrCodeEntityNotFound = ErrorCode{
		Code:       "ENTITY_NOT_FOUND",
		Message:    "Entity not found",
		HTTPStatus: http.StatusNotFound,
		ServiceErr: services.ErrNotFound,
	}
	ErrCodeExternalService = ErrorCode{
		Code:       "EXTERNAL_SERVICE_ERROR",
		Message:    "A backing service failed",
		HTTPStatus: http.StatusInternalServerError,
		ServiceErr: services.ErrExternalService,
	}
	ErrCodeInternalError = ErrorCode{
		Code:       "INTERNAL_ERROR",
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		ServiceErr: nil,
	}
	ErrCodeBadRequest = ErrorCode{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		HTTPStatus: http.StatusBadRequest,
		ServiceErr: nil,
	}
)

var errorCodeRegistry = []ErrorCode{
	ErrCodeValidationFailed,
	ErrCodeEntityNotFound,
	ErrCodeExternalService,
}

var hideErrorDetails = false

func SetHideErrorDetails(hide bool) {
	hideErrorDetails = hide
}

func HandleServiceError(w http.ResponseWriter, err error) {
	for _, ec := range errorCodeRegistry {
		if ec.ServiceErr != nil && errors.Is(err, ec.ServiceErr) {
			RespondWithError(w, ec, err)
			return
		}
	}
	RespondWithError(w, ErrCodeInternalError, err)
}

func RespondWithError(w http.ResponseWriter, errCode ErrorCode, err error) {
	resp := ErrorResponse{
		Code:    errCode.Code,
		Message: errCode.Message,
	}

	if !hideErrorDetails && err != nil {
		resp.Details = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errCode.HTTPStatus)
	json.NewEncoder(w).Encode(resp)
}
