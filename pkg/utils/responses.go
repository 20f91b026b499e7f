package utils

import (
	"encoding/json"
	"net/http"
)

// APIError is one entry of an error document, in the same vocabulary the
// resource envelope uses (status as a string, human-readable title).
type APIError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Source any    `json:"source,omitempty"`
}

type errorDocument struct {
	Errors []APIError `json:"errors"`
}

// WriteJSON writes body as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ResponseError writes a single-error document.
func ResponseError(w http.ResponseWriter, code int, title, detail string, source any) {
	WriteJSON(w, code, errorDocument{
		Errors: []APIError{{
			Status: http.StatusText(code),
			Title:  title,
			Detail: detail,
			Source: source,
		}},
	})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string, source any) {
	ResponseError(w, http.StatusBadRequest, "Bad request", detail, source)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusNotFound, "Not found", detail, nil)
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter) {
	ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", "", nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, detail string) {
	ResponseError(w, http.StatusConflict, "Conflict", detail, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError, "Internal server error", "", nil)
}
