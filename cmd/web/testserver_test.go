package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/myrjola/whodunit/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

// stubTextGenerator stands in for the language model. A non-JSON reply makes
// case generation fall back to the fixed case while conversations still
// receive the reply verbatim, which keeps most tests to a single stub.
type stubTextGenerator struct {
	reply string
	err   error
}

func (s stubTextGenerator) Complete(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubSynthesizer struct {
	audio []byte
	err   error
}

func (s stubSynthesizer) Synthesize(_ context.Context, _, _ string) ([]byte, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.audio, "audio/mpeg", nil
}

// newTestServer wires the application with stub collaborators and serves the
// real route table over httptest.
func newTestServer(t *testing.T, textGen stubTextGenerator, synthesizer stubSynthesizer) *httptest.Server {
	t.Helper()
	app := newApplication(testhelpers.NewLogger(io.Discard), time.Second, textGen, synthesizer)
	srv := httptest.NewServer(app.routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, urlPath string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := srv.Client().Post(srv.URL+urlPath, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// generateCase triggers case generation so follow-up requests have an active session.
func generateCase(t *testing.T, srv *httptest.Server) generateCaseResponse {
	t.Helper()
	resp := postJSON(t, srv, "/api/generate-case", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out generateCaseResponse
	decodeBody(t, resp, &out)
	return out
}
