package v1beta1

import (
	"encoding/json"
	"net/http"

	"github.com/odpf/digits/internal/routing"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", routing.MimeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
