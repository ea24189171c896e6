package main

import (
	"net/http"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/game"
)

type submitSuspectRequest struct {
	Suspect string `json:"suspect"`
}

func (app *application) submitSuspect(w http.ResponseWriter, r *http.Request) {
	var req submitSuspectRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if req.Suspect == "" {
		app.errorJSON(w, r, http.StatusBadRequest, "missing suspect name")
		return
	}

	result, err := app.judge.Judge(req.Suspect)
	if err != nil {
		if errors.Is(err, game.ErrNotReady) {
			app.errorJSON(w, r, http.StatusBadRequest, "no case generated yet")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, result)
}
