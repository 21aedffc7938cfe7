package httpapi

import (
	"encoding/json"
	"net/http"
)

// APIError is the error envelope every endpoint returns. Code is a stable
// machine-readable string (invalid_json, invalid_criteria, rate_limited,
// unauthorized, search_failed, list_failed, import_failed, internal_error);
// Message is for humans and may change between releases.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emits the APIError envelope, tagging it with the request id so a
// crawler operator can line a failed import up with the access log.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
