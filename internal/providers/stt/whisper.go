package stt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Whisper calls an OpenAI-compatible audio transcription endpoint. Pointing
// BaseURL at a compatible gateway swaps the engine without code changes.
type Whisper struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewWhisper(apiKey, baseURL, model string, timeout time.Duration) *Whisper {
	return &Whisper{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (w *Whisper) Close() error { return nil }

// Transcribe uploads the audio as multipart form data and returns the plain
// transcript. Temperature is pinned to zero so repeated calls on identical
// audio stay as reproducible as the engine allows.
func (w *Whisper) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	if err := mw.WriteField("model", w.model); err != nil {
		return "", err
	}
	if err := mw.WriteField("response_format", "text"); err != nil {
		return "", err
	}
	if err := mw.WriteField("temperature", "0"); err != nil {
		return "", err
	}
	if language != "" {
		if err := mw.WriteField("language", language); err != nil {
			return "", err
		}
	}

	part, err := mw.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(audio); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+w.apiKey)

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transcription API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcription API error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	// response_format=text puts the transcript directly in the body
	return strings.TrimSpace(string(respBody)), nil
}
