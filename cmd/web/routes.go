package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("POST /api/generate-case", app.generateCase)
	mux.HandleFunc("GET /api/characters", app.characters)
	mux.HandleFunc("POST /api/converse", app.converse)
	mux.HandleFunc("POST /api/text-to-speech", app.textToSpeech)
	mux.HandleFunc("POST /api/submit-suspect", app.submitSuspect)

	// logRequest runs first so that panic logs also carry the request identity.
	return alice.New(app.logRequest, app.recoverPanic, commonHeaders).Then(mux)
}
