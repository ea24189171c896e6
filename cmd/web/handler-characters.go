package main

import (
	"net/http"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/game"
	"github.com/myrjola/whodunit/internal/models"
)

type charactersResponse struct {
	Characters []models.Character `json:"characters"`
}

func (app *application) characters(w http.ResponseWriter, r *http.Request) {
	characters, err := app.session.Characters()
	if err != nil {
		if errors.Is(err, game.ErrNotReady) {
			app.errorJSON(w, r, http.StatusBadRequest, "no case generated yet")
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, charactersResponse{Characters: characters})
}
