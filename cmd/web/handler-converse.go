package main

import (
	"context"
	"net/http"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/game"
)

type converseRequest struct {
	Character string `json:"character"`
	Message   string `json:"message"`
}

type converseResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Character string `json:"character"`
}

type characterNotFoundResponse struct {
	Error     string   `json:"error"`
	Requested string   `json:"requested"`
	Available []string `json:"available"`
}

func (app *application) converse(w http.ResponseWriter, r *http.Request) {
	var req converseRequest
	if !app.decodeJSON(w, r, &req) {
		return
	}
	if req.Character == "" || req.Message == "" {
		app.errorJSON(w, r, http.StatusBadRequest, "missing character or message")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), app.upstreamTimeout)
	defer cancel()

	reply, err := app.conversations.Converse(ctx, req.Character, req.Message)
	if err != nil {
		var notFound *game.CharacterNotFoundError
		switch {
		case errors.Is(err, game.ErrNotReady):
			app.errorJSON(w, r, http.StatusBadRequest, "no case generated yet")
		case errors.As(err, &notFound):
			app.writeJSON(w, r, http.StatusNotFound, characterNotFoundResponse{
				Error:     "character not found",
				Requested: notFound.Requested,
				Available: notFound.Available,
			})
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.writeJSON(w, r, http.StatusOK, converseResponse{
		Success:   true,
		Response:  reply,
		Character: req.Character,
	})
}
