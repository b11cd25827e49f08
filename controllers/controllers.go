package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/chaiyapat/worklog/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Submit  *SubmitController
	Entries *EntriesController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Submit:  NewSubmitController(services),
		Entries: NewEntriesController(services),
	}
}

// writeJSON renders a JSON response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
