package response

import (
	"encoding/json"
	"net/http"

	"unlock-service/pkg/xerrors"
)

// Payload shapes here are a wire contract with the public unlock form:
// success bodies are written as-is, errors as {"detail": ...}.

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}

// ValidationFailed writes a 422 with per-field detail.
func ValidationFailed(w http.ResponseWriter, fields []xerrors.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"detail": fields})
}
