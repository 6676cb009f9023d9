package handler

import "net/http"

type pingResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Ping reports service liveness.
func Ping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, pingResponse{OK: true, Message: "pong"})
	}
}
