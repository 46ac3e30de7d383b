// health.go — liveness-проба.
package handlers

import (
	"encoding/json"
	"net/http"
)

// Healthz обрабатывает GET /healthz.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
