package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Synthesizer converts reply text into spoken audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceId string) ([]byte, error)
}

// VoiceSettings are the fixed quality weights of the government voice
// profile; they are not caller-tunable.
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// ElevenLabsSynthesizer talks to an ElevenLabs-compatible TTS endpoint.
type ElevenLabsSynthesizer struct {
	BaseURL  string
	APIKey   string
	ModelID  string
	Settings VoiceSettings
	Client   *http.Client
}

var _ Synthesizer = &ElevenLabsSynthesizer{}

func NewElevenLabsSynthesizer(baseURL, apiKey, modelID string, settings VoiceSettings) *ElevenLabsSynthesizer {
	return &ElevenLabsSynthesizer{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		ModelID:  modelID,
		Settings: settings,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

func (s *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text, voiceId string) ([]byte, error) {
	reqPayload := ttsRequest{
		Text:          text,
		ModelID:       s.ModelID,
		VoiceSettings: s.Settings,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", s.BaseURL, voiceId)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", s.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	return bodyBytes, nil
}
