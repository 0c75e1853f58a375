// Package voice provides text-to-speech and speech-to-text via the
// ElevenLabs HTTP API.
//
// Voice is best-effort throughout: TTS failures drop the audio frame and the
// question continues as text, STT failures surface to the caller so the
// client can fall back to typed answers. Neither path ever fails a session.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// ErrDisabled is returned when voice is turned off in configuration.
var ErrDisabled = errors.New("voice: disabled")

const defaultBaseURL = "https://api.elevenlabs.io"

// Config holds ElevenLabs connection settings.
type Config struct {
	APIKey       string
	BaseURL      string // override for tests; defaults to the public API
	VoiceID      string // interrogator voice
	CoachVoiceID string // brief coach voice
	TTSModel     string
	STTModel     string
	Timeout      time.Duration
}

// Client talks to ElevenLabs. A nil or disabled client returns ErrDisabled
// from every method, so callers can hold one unconditionally.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an ElevenLabs client. Returns a disabled client when the
// API key is empty.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether the client has credentials to use.
func (c *Client) Enabled() bool {
	return c != nil && c.cfg.APIKey != ""
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize converts text to MP3 audio using the interrogator voice.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return c.synthesize(ctx, text, c.cfg.VoiceID)
}

// SynthesizeCoach converts text to MP3 audio using the coach voice, used for
// the spoken brief summary.
func (c *Client) SynthesizeCoach(ctx context.Context, text string) ([]byte, error) {
	return c.synthesize(ctx, text, c.cfg.CoachVoiceID)
}

func (c *Client) synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if text == "" {
		return nil, fmt.Errorf("voice: empty text")
	}

	body, err := json.Marshal(ttsRequest{
		Text:    text,
		ModelID: c.cfg.TTSModel,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("voice: marshal tts request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.cfg.BaseURL, url.PathEscape(voiceID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("voice: build tts request: %w", err)
	}
	req.Header.Set("xi-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voice: tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError("tts", resp)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("voice: read tts response: %w", err)
	}
	return audio, nil
}

type sttResponse struct {
	Text string `json:"text"`
}

// Transcribe converts uploaded witness audio to text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	if len(audio) == 0 {
		return "", fmt.Errorf("voice: empty audio")
	}
	if filename == "" {
		filename = "answer.webm"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("voice: build multipart form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("voice: write audio part: %w", err)
	}
	if err := mw.WriteField("model_id", c.cfg.STTModel); err != nil {
		return "", fmt.Errorf("voice: write model field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("voice: finalize multipart form: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/v1/speech-to-text"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("voice: build stt request: %w", err)
	}
	req.Header.Set("xi-api-key", c.cfg.APIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("voice: stt request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apiError("stt", resp)
	}

	var parsed sttResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("voice: decode stt response: %w", err)
	}
	return parsed.Text, nil
}

func apiError(op string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("voice: %s returned HTTP %d: %s", op, resp.StatusCode, string(detail))
}
