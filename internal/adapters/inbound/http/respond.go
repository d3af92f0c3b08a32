package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleitonmarx/moodasana/internal/domain"
)

const (
	errCodeBadRequest         = "BAD_REQUEST"
	errCodeNotFound           = "NOT_FOUND"
	errCodeProviderError      = "PROVIDER_ERROR"
	errCodeNotReady           = "NOT_READY"
	errCodeInternalError      = "INTERNAL_ERROR"
	errCodeDimensionMismatch  = "DIMENSION_MISMATCH"
	errMessageInternalFailure = "An unexpected error occurred while processing the prompt."
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case errCodeBadRequest:
		statusCode = http.StatusBadRequest
	case errCodeNotFound:
		statusCode = http.StatusNotFound
	case errCodeProviderError:
		statusCode = http.StatusBadGateway
	case errCodeNotReady:
		statusCode = http.StatusServiceUnavailable
	}
	respondJSON(w, statusCode, err)
}

func newError(code, message string) ErrorResp {
	resp := ErrorResp{}
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

// toError maps domain errors to wire error codes. Dimension mismatches stay
// internal: they signal a deployment inconsistency, not a caller mistake.
func toError(err error) ErrorResp {
	var (
		validationErr  *domain.ValidationErr
		notFoundErr    *domain.NotFoundErr
		providerErr    *domain.ProviderErr
		unavailableErr *domain.ProviderUnavailableErr
		notReadyErr    *domain.CacheNotReadyErr
		dimensionErr   *domain.DimensionMismatchErr
	)
	switch {
	case errors.As(err, &validationErr):
		return newError(errCodeBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return newError(errCodeNotFound, notFoundErr.Error())
	case errors.As(err, &providerErr):
		return newError(errCodeProviderError, providerErr.Error())
	case errors.As(err, &unavailableErr):
		return newError(errCodeProviderError, unavailableErr.Error())
	case errors.As(err, &notReadyErr):
		return newError(errCodeNotReady, notReadyErr.Error())
	case errors.As(err, &dimensionErr):
		return newError(errCodeDimensionMismatch, errMessageInternalFailure)
	default:
		return newError(errCodeInternalError, errMessageInternalFailure)
	}
}
