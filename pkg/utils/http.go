package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

// DecodeBody rejects bodies with fields the target does not declare.
func DecodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, ErrorResponse{Message: message}, code)
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	res := ErrorResponse{Message: "invalid request"}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		res.Fields = make(map[string]string, len(ve))
		for _, fe := range ve {
			res.Fields[fe.Field()] = fmt.Sprintf("failed on %q", fe.Tag())
		}
	}

	return WriteJSON(w, res, http.StatusBadRequest)
}
