package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"groq-relay/internal/middleware"
	"groq-relay/internal/models"
	"groq-relay/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: middleware.GetRequestID(r.Context()),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidModel *services.InvalidModelError
		malformed    *services.MalformedRequestError
		upstream     *services.UpstreamError
		transport    *services.TransportError
	)

	switch {
	case errors.As(err, &invalidModel):
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_MODEL", invalidModel.Error(), r))
	case errors.As(err, &malformed):
		writeJSON(w, http.StatusBadRequest, errorResp("MALFORMED_REQUEST", malformed.Message, r))
	case errors.As(err, &upstream):
		writeJSON(w, http.StatusInternalServerError, errorResp("UPSTREAM_ERROR", upstream.Error(), r))
	case errors.As(err, &transport):
		writeJSON(w, http.StatusInternalServerError, errorResp("TRANSPORT_ERROR", transport.Error(), r))
	case errors.Is(err, services.ErrEmptyUpstreamResponse):
		writeJSON(w, http.StatusInternalServerError, errorResp("EMPTY_UPSTREAM_RESPONSE", services.ErrEmptyUpstreamResponse.Error(), r))
	default:
		log.Printf("[%s] unexpected error: %v", middleware.GetRequestID(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
