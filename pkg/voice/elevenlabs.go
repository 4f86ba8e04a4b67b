package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sipeed/dialoguecast/pkg/logger"
)

const (
	DefaultElevenLabsAPIBase = "https://api.elevenlabs.io"
	DefaultElevenLabsModel   = "eleven_multilingual_v2"
	DefaultOutputFormat      = "mp3_44100_128"
)

// ElevenLabsOptions configures an ElevenLabsProvider.
type ElevenLabsOptions struct {
	APIKey       string
	APIBase      string
	Model        string
	OutputFormat string
	HTTPClient   *http.Client
}

// ElevenLabsProvider talks to the ElevenLabs voices and text-to-speech APIs.
type ElevenLabsProvider struct {
	apiKey       string
	apiBase      string
	model        string
	outputFormat string
	httpClient   *http.Client
}

type elevenLabsSpeechRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

type elevenLabsVoicesResponse struct {
	Voices []Voice `json:"voices"`
}

// NewElevenLabsProvider creates an ElevenLabs client. Requests carry no
// client-side timeout; cancellation comes from the request context only.
func NewElevenLabsProvider(opts ElevenLabsOptions) *ElevenLabsProvider {
	if opts.APIBase == "" {
		opts.APIBase = DefaultElevenLabsAPIBase
	}
	if opts.Model == "" {
		opts.Model = DefaultElevenLabsModel
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = DefaultOutputFormat
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}

	logger.DebugCF("voice", "Creating ElevenLabs provider", map[string]any{
		"api_base":      opts.APIBase,
		"model":         opts.Model,
		"output_format": opts.OutputFormat,
		"has_api_key":   opts.APIKey != "",
	})

	return &ElevenLabsProvider{
		apiKey:       opts.APIKey,
		apiBase:      strings.TrimRight(opts.APIBase, "/"),
		model:        opts.Model,
		outputFormat: opts.OutputFormat,
		httpClient:   opts.HTTPClient,
	}
}

// IsAvailable reports whether the provider has a credential to call the API with.
func (p *ElevenLabsProvider) IsAvailable() bool {
	return p.apiKey != ""
}

// ListVoices fetches the account's voice catalog.
func (p *ElevenLabsProvider) ListVoices(ctx context.Context) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiBase+"/v1/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create voices request: %w", err)
	}
	req.Header.Set("xi-api-key", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voices request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out elevenLabsVoicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode voices response: %w", err)
	}

	logger.InfoCF("voice", "Fetched voice catalog", map[string]any{
		"voices": len(out.Voices),
	})

	return Catalog(out.Voices), nil
}

// Synthesize starts a streaming text-to-speech request and returns the
// response body. The caller must close it.
func (p *ElevenLabsProvider) Synthesize(ctx context.Context, text string, voice Voice) (io.ReadCloser, error) {
	logger.DebugCF("voice", "Synthesizing speech", map[string]any{
		"text_length": len(text),
		"voice":       voice.Name,
		"voice_id":    voice.ID,
	})

	bodyBytes, err := json.Marshal(elevenLabsSpeechRequest{Text: text, ModelID: p.model})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TTS request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s/stream?output_format=%s",
		p.apiBase, url.PathEscape(voice.ID), url.QueryEscape(p.outputFormat))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return resp.Body, nil
}
