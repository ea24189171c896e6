package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/myrjola/whodunit/internal/models"
)

type generateCaseResponse struct {
	Success bool        `json:"success"`
	Case    models.Case `json:"case"`
}

// generateCase produces a fresh mystery and replaces the active session with
// it. Generation never fails; at worst the player gets the fixed fallback case.
func (app *application) generateCase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), app.upstreamTimeout)
	defer cancel()

	kase := app.generator.Generate(ctx)
	kase = app.session.ReplaceCase(kase)

	app.logger.LogAttrs(r.Context(), slog.LevelInfo, "new case generated",
		slog.String("description", kase.Description),
		slog.String("suspect", kase.Suspect),
		slog.Int("characters", len(kase.Characters)))

	app.writeJSON(w, r, http.StatusOK, generateCaseResponse{
		Success: true,
		Case:    kase,
	})
}
