package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/myrjola/whodunit/internal/errors"
	"github.com/myrjola/whodunit/internal/models"
)

// client is thin JSON-over-HTTP plumbing for the game API.
type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string) *client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: time.Minute},
	}
}

func (c *client) generateCase() (models.Case, error) {
	var out struct {
		Case models.Case `json:"case"`
	}
	if err := c.post("/api/generate-case", nil, &out); err != nil {
		return models.Case{}, err
	}
	return out.Case, nil
}

func (c *client) characters() ([]models.Character, error) {
	var out struct {
		Characters []models.Character `json:"characters"`
	}
	if err := c.get("/api/characters", &out); err != nil {
		return nil, err
	}
	return out.Characters, nil
}

func (c *client) converse(character, message string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	payload := map[string]string{"character": character, "message": message}
	if err := c.post("/api/converse", payload, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

func (c *client) submitSuspect(suspect string) (models.GuessResult, error) {
	var out models.GuessResult
	if err := c.post("/api/submit-suspect", map[string]string{"suspect": suspect}, &out); err != nil {
		return models.GuessResult{}, err
	}
	return out, nil
}

func (c *client) get(urlPath string, dst any) error {
	resp, err := c.http.Get(c.baseURL + urlPath)
	if err != nil {
		return errors.Wrap(err, "get "+urlPath)
	}
	return c.decode(resp, dst)
}

func (c *client) post(urlPath string, payload, dst any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	resp, err := c.http.Post(c.baseURL+urlPath, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "post "+urlPath)
	}
	return c.decode(resp, dst)
}

func (c *client) decode(resp *http.Response, dst any) error {
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server: %s", apiErr.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
