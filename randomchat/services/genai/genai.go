// randomchat/services/genai/genai.go
package genai

import (
	"context"
	"fmt"
	"strings"

	httputils "randomchat/randomchat/utils/http"
)

// Client talks to the Google Generative Language REST API. One request per
// chat turn: the caller supplies the whole conversation as Contents and we
// extract the single candidate's text.
type Client struct {
	baseURL string
	apiKey  string
	model   string
}

func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(apiKey, "https://generativelanguage.googleapis.com/v1beta")
}

// NewClientWithBaseURL exists so tests can point the client at a stub.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   "gemini-2.0-flash",
	}
}

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type SafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
	SafetySettings   []SafetySetting  `json:"safetySettings"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Role  string `json:"role"`
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// defaultGenerationConfig and defaultSafetySettings are fixed; callers do
// not tune sampling per request.
var defaultGenerationConfig = GenerationConfig{
	MaxOutputTokens: 1000,
	Temperature:     0.9,
	TopP:            1,
	TopK:            1,
}

var defaultSafetySettings = []SafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// Generate sends the conversation and returns the reply text. An empty
// candidate list or empty text is an error; the caller decides what the
// user sees.
func (c *Client) Generate(ctx context.Context, contents []Content) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	req := generateRequest{
		Contents:         contents,
		GenerationConfig: defaultGenerationConfig,
		SafetySettings:   defaultSafetySettings,
	}
	var resp generateResponse
	if err := httputils.PostJSONWithHeader(ctx, url, "x-goog-api-key", c.apiKey, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	text := sb.String()
	if text == "" {
		return "", fmt.Errorf("empty response text")
	}
	return text, nil
}
