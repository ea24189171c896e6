package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myrjola/whodunit/internal/errors"
)

// writeJSON marshals v and writes it with the given status code.
func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// errorJSON writes a client-visible JSON error body with the given status.
// The request method and URI reach the log record through the context.
func (app *application) errorJSON(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, message, slog.Int("status", status))
	app.writeJSON(w, r, status, map[string]string{"error": message})
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

// decodeJSON decodes a request body into dst, reporting malformed bodies to
// the client. The bool return tells the handler whether to continue.
func (app *application) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		app.errorJSON(w, r, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
