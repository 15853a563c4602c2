package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/themizzi/sauceshop/internal/store"
)

// ErrorResponse represents a transport-level error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeResponse sends a store response as JSON
func writeResponse(w http.ResponseWriter, resp store.Response) {
	body, err := resp.JSON()
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		sendErrorResponse(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	if _, err := w.Write(body); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// invalidBody is the reply for a request body that is not valid JSON
func invalidBody() store.Response {
	return store.Response{
		Status: http.StatusBadRequest,
		Body: ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "Invalid request body",
		},
	}
}

// decodeBody decodes a JSON request body into v, replying 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}
