package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func respondWithJSON(log *slog.Logger, w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err = w.Write(data); err != nil {
		log.Error("Failed to write JSON response", "error", err)
	}
}

func respondWithError(log *slog.Logger, w http.ResponseWriter, code int, msg string) {
	respondWithJSON(log, w, code, map[string]string{"error": msg})
}
