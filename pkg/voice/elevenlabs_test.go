package voice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClient(Config{
		APIKey:       "test-key",
		BaseURL:      baseURL,
		VoiceID:      "voice-main",
		CoachVoiceID: "voice-coach",
		TTSModel:     "eleven_turbo_v2_5",
		STTModel:     "scribe_v1",
	})
}

func TestSynthesize(t *testing.T) {
	var gotPath, gotKey string
	var gotReq ttsRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	audio, err := testClient(srv.URL).Synthesize(context.Background(), "State your name for the record.")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
	assert.Equal(t, "/v1/text-to-speech/voice-main", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "State your name for the record.", gotReq.Text)
	assert.Equal(t, "eleven_turbo_v2_5", gotReq.ModelID)
}

func TestSynthesizeCoach_UsesCoachVoice(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("mp3"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SynthesizeCoach(context.Background(), "Overall a strong session.")
	require.NoError(t, err)
	assert.Equal(t, "/v1/text-to-speech/voice-coach", gotPath)
}

func TestSynthesize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Synthesize(context.Background(), "Hello.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestSynthesize_EmptyText(t *testing.T) {
	_, err := testClient("http://unused").Synthesize(context.Background(), "")
	assert.Error(t, err)
}

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/speech-to-text", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "scribe_v1", r.FormValue("model_id"))

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "answer-7.webm", header.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, []byte("opus-bytes"), data)

		json.NewEncoder(w).Encode(sttResponse{Text: "I do not recall."})
	}))
	defer srv.Close()

	text, err := testClient(srv.URL).Transcribe(context.Background(), []byte("opus-bytes"), "answer-7.webm")
	require.NoError(t, err)
	assert.Equal(t, "I do not recall.", text)
}

func TestTranscribe_DefaultFilename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "answer.webm", header.Filename)
		json.NewEncoder(w).Encode(sttResponse{Text: "ok"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Transcribe(context.Background(), []byte("x"), "")
	require.NoError(t, err)
}

func TestTranscribe_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad audio", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Transcribe(context.Background(), []byte("x"), "a.webm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 422")
}

func TestDisabledClient(t *testing.T) {
	disabled := NewClient(Config{})
	assert.False(t, disabled.Enabled())

	_, err := disabled.Synthesize(context.Background(), "Hello.")
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = disabled.Transcribe(context.Background(), []byte("x"), "a.webm")
	assert.ErrorIs(t, err, ErrDisabled)

	var nilClient *Client
	assert.False(t, nilClient.Enabled())
}
