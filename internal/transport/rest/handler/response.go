package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Envelope is the uniform outer response shape returned by every endpoint.
type Envelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		log.Println(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't write response: %v", err), http.StatusInternalServerError)
		log.Println(err)
		return
	}
}

// RespondOK sends a success envelope with the given message and data.
func respondOK(w http.ResponseWriter, message string, data map[string]interface{}) {
	respond(w, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondFailure sends a failure envelope. Data is always empty on failure.
func respondFailure(w http.ResponseWriter, code int, message string) {
	respond(w, code, Envelope{
		Success: false,
		Message: message,
		Data:    map[string]interface{}{},
	})
}
