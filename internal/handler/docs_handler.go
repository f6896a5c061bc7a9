package handler

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapiDoc []byte

// Docs serves the OpenAPI document for the API.
func Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(openapiDoc)
}
