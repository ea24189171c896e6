package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/tts"
)

type textToSpeechRequest struct {
	Text      string `json:"text"`
	Character string `json:"character"`
}

type speechErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// textToSpeech voices the given text with the character's bound voice. An
// unknown or missing character falls back to the default voice; only the
// speech provider itself can fail this request.
func (app *application) textToSpeech(w http.ResponseWriter, r *http.Request) {
	var req textToSpeechRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		app.errorJSON(w, r, http.StatusBadRequest, "missing text")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), app.upstreamTimeout)
	defer cancel()

	audio, contentType, err := app.speech.Speak(ctx, req.Text, req.Character)
	if err != nil {
		var providerErr *tts.ProviderError
		if errors.As(err, &providerErr) {
			app.logger.LogAttrs(r.Context(), slog.LevelError, "speech provider error", errors.SlogError(err))
			app.writeJSON(w, r, providerErr.StatusCode, speechErrorResponse{
				Error:   fmt.Sprintf("speech synthesis failed: %d", providerErr.StatusCode),
				Details: providerErr.Detail,
			})
			return
		}
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(audio)
}
