package handlers

import "net/http"

// Health is the liveness probe. It deliberately skips the store: demo mode
// has no external dependency to check, and in database mode a degraded pool
// should surface as request errors, not as a flapping probe.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}
