package jsonutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// UnmarshalJsonResponse decodes the request body into T and runs the
// validate struct tags before returning it.
func UnmarshalJsonResponse[T any](request *http.Request) (T, error) {
	var data T

	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&data); err != nil {
		return data, fmt.Errorf("error decoding request body: %v", err)
	}

	if err := validate.Struct(data); err != nil {
		var messages []string
		for _, fieldError := range err.(validator.ValidationErrors) {
			messages = append(messages, fmt.Sprintf("%s failed on %s", fieldError.Field(), fieldError.Tag()))
		}
		return data, fmt.Errorf("validation failed: %s", strings.Join(messages, ", "))
	}

	return data, nil
}

func WriteJSONResponse(responseWriter http.ResponseWriter, data any, statusCode int) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(statusCode)

	if err := json.NewEncoder(responseWriter).Encode(data); err != nil {
		http.Error(responseWriter, "error encoding response", http.StatusInternalServerError)
	}
}
