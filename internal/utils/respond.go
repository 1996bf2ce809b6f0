package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON encodes v as the response body with the given status code.
// Every endpoint answers through this so storage errors never leak raw text.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Failed to encode response: ", err)
	}
}
