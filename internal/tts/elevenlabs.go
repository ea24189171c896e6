// Package tts synthesizes speech through the ElevenLabs text-to-speech API.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/myrjola/whodunit/internal/errors"
)

const (
	// DefaultBaseURL is the public ElevenLabs API endpoint.
	DefaultBaseURL = "https://api.elevenlabs.io"

	// modelID selects the synthesis model for all requests.
	modelID = "eleven_v3"

	contentTypeAudio = "audio/mpeg"
)

// ProviderError is returned when the provider answers with a non-200 status.
// StatusCode and Detail carry the provider's diagnostics to the boundary layer.
type ProviderError struct {
	StatusCode int
	Detail     string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("speech synthesis failed with status %d: %s", e.StatusCode, e.Detail)
}

// Client calls the ElevenLabs text-to-speech endpoint. It performs no retries
// and no caching; a failed call surfaces immediately.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize converts text to audio with the given voice and returns the raw
// audio bytes together with their content type.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, string, error) {
	payload := synthesisRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", errors.Wrap(err, "marshal synthesis request")
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", errors.Wrap(err, "create synthesis request")
	}
	req.Header.Set("Accept", contentTypeAudio)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "send synthesis request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &ProviderError{
			StatusCode: resp.StatusCode,
			Detail:     readErrorDetail(resp.Body),
		}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.Wrap(err, "read synthesis response")
	}
	return audio, contentTypeAudio, nil
}

// readErrorDetail digs the human-readable message out of the provider's JSON
// error envelope, falling back to the raw body.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "unknown error"
	}
	var envelope struct {
		Detail struct {
			Message string `json:"message"`
		} `json:"detail"`
	}
	if err = json.Unmarshal(raw, &envelope); err == nil && envelope.Detail.Message != "" {
		return envelope.Detail.Message
	}
	return string(raw)
}
