package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultChatModel = "gemini-3-flash-preview"
	DefaultTTSModel  = "gemini-2.5-flash-preview-tts"
	DefaultVoice     = "Kore"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

type GenerateContentPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type GenerateContentContent struct {
	Parts []*GenerateContentPart `json:"parts"`
	Role  string                 `json:"role,omitempty"`
}

type SpeechConfig struct {
	VoiceConfig VoiceConfig `json:"voiceConfig"`
}

type VoiceConfig struct {
	PrebuiltVoiceConfig PrebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type PrebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type GenerationConfig struct {
	ResponseMimeType   string        `json:"responseMimeType,omitempty"`
	ResponseModalities []string      `json:"responseModalities,omitempty"`
	SpeechConfig       *SpeechConfig `json:"speechConfig,omitempty"`
}

type GenerateContentRequest struct {
	SystemInstruction *GenerateContentContent   `json:"systemInstruction,omitempty"`
	Contents          []*GenerateContentContent `json:"contents"`
	GenerationConfig  *GenerationConfig         `json:"generationConfig,omitempty"`
}

type GenerateContentCandidate struct {
	Content *GenerateContentContent `json:"content"`
}

type GenerateContentResponse struct {
	Candidates []*GenerateContentCandidate `json:"candidates"`
}

// Client is the boundary to the Gemini generative backend. All three gateway
// operations (chat turn, guide generation, audio synthesis) are single
// request/response calls over HTTPS, one attempt each. Retries are a caller
// concern.
type Client struct {
	apiKey     string
	baseURL    string
	chatModel  string
	ttsModel   string
	voice      string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithChatModel(model string) Option {
	return func(c *Client) {
		c.chatModel = model
	}
}

func WithTTSModel(model string) Option {
	return func(c *Client) {
		c.ttsModel = model
	}
}

func WithVoice(voice string) Option {
	return func(c *Client) {
		c.voice = voice
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey string, options ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		chatModel: DefaultChatModel,
		ttsModel:  DefaultTTSModel,
		voice:     DefaultVoice,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// generateContent posts a request against the given model and decodes the
// candidate envelope. Transport and non-200 failures come back as
// *TransportError.
func (c *Client) generateContent(ctx context.Context, model string, payload *GenerateContentRequest) (*GenerateContentResponse, error) {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return nil, &TransportError{
			StatusCode: res.StatusCode,
			Body:       string(resBody),
		}
	}

	var geminiRes GenerateContentResponse
	if err := json.Unmarshal(resBody, &geminiRes); err != nil {
		return nil, &TransportError{Err: err}
	}

	return &geminiRes, nil
}

// firstText pulls the first text part out of a candidate envelope.
func firstText(res *GenerateContentResponse) (string, bool) {
	if len(res.Candidates) == 0 {
		return "", false
	}
	content := res.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	return content.Parts[0].Text, true
}

// stripJSONFence removes a markdown code fence the model sometimes wraps
// around structured output.
func stripJSONFence(raw string) string {
	b := bytes.TrimSpace([]byte(raw))
	b = bytes.TrimPrefix(b, []byte("```json"))
	b = bytes.TrimPrefix(b, []byte("```"))
	b = bytes.TrimSuffix(b, []byte("```"))
	b = bytes.TrimSpace(b)
	return string(b)
}
