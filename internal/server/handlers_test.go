package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/may-ank-dot/MatchingEngine/internal/matching"
	"github.com/may-ank-dot/MatchingEngine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(Config{Listen: ":0"}, matching.New(nil, nil), nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestHandleMatch_RankedResults(t *testing.T) {
	ts := newTestServer(t)

	body := `{
		"candidate": {"name": "Ada", "raw_text": "I know Rust and Python"},
		"jobs": [
			{"id": "b", "title": "Backend", "description": "Looking for a Rust developer"},
			{"id": "a", "title": "Systems", "description": "Looking for a Rust developer"},
			{"id": "c", "title": "Data", "description": "Excel wizard wanted"}
		],
		"top_k": 2
	}`

	resp := postJSON(t, ts.URL+"/match", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []types.MatchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&results))

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].JobID)
	assert.Equal(t, "b", results[1].JobID)
	assert.Equal(t, 30.00, results[0].Score)
	assert.Equal(t, []string{"rust"}, results[0].MatchedSkills)
	assert.Equal(t, "skill_jaccard=0.500", results[0].Explanation)
}

func TestHandleMatch_EmptyJobs(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/match", `{"candidate": {"raw_text": "Rust"}, "jobs": []}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestHandleMatch_InvalidBody(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/match", `{not json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleMatch_NegativeTopK(t *testing.T) {
	ts := newTestServer(t)

	body := `{"candidate": {"raw_text": "Rust"}, "jobs": [{"id": "a"}], "top_k": -1}`

	resp := postJSON(t, ts.URL+"/match", body)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "top_k")
}

func TestHandleMatch_MissingCandidateText(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/match", `{"jobs": [{"id": "a"}]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "raw_text")
}

func uploadFile(t *testing.T, url, filename string, content []byte) *http.Response {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(url+"/parse", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func TestHandleParse_PlainText(t *testing.T) {
	ts := newTestServer(t)

	resp := uploadFile(t, ts.URL, "resume.txt", []byte("I know  Rust\r\nand Python"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "I know Rust\nand Python", string(raw))
}

func TestHandleParse_NoFile(t *testing.T) {
	ts := newTestServer(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/parse", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleParse_ExtractionFailure(t *testing.T) {
	ts := newTestServer(t)

	resp := uploadFile(t, ts.URL, "resume.pdf", []byte("definitely not a pdf"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "extraction failed")
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "matchengine_match_requests_total")
}
