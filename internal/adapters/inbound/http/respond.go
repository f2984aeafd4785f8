package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodyBytes bounds request bodies; an embedding of 1536 floats fits comfortably.
const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case ErrorCode_NotFound:
		statusCode = http.StatusNotFound
	case ErrorCode_QuotaExceeded, ErrorCode_RateLimited:
		statusCode = http.StatusTooManyRequests
	case ErrorCode_NetworkError:
		statusCode = http.StatusServiceUnavailable
	case ErrorCode_AuthError:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

func badRequest(w http.ResponseWriter, format string, args ...any) {
	respondError(w, ErrorResp{Error: Error{
		Code:    ErrorCode_BadRequest,
		Message: fmt.Sprintf(format, args...),
	}})
}

func notFound(w http.ResponseWriter, err error) {
	respondError(w, ErrorResp{Error: Error{
		Code:    ErrorCode_NotFound,
		Message: err.Error(),
	}})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		badRequest(w, "invalid request body: %v", err)
		return false
	}
	return true
}
