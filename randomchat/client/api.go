// randomchat/client/api.go
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"randomchat/randomchat/utils/types"
)

// APIClient wraps the backend HTTP API for terminal clients.
type APIClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{BaseURL: baseURL, HTTP: http.DefaultClient}
}

func (c *APIClient) Register(username, password string) (string, error) {
	var resp types.RegisterResponse
	err := c.post("/api/register", types.AuthRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *APIClient) Login(username, password string) (*types.LoginResponse, error) {
	var resp types.LoginResponse
	err := c.post("/api/login", types.AuthRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Chat sends the latest message with the full transcript (the new user
// turn included) as context.
func (c *APIClient) Chat(message string, history []types.ChatTurn) (string, error) {
	var resp types.ChatResponse
	err := c.post("/api/gemini-chat", types.ChatRequest{Message: message, ChatHistory: history}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Response, nil
}

// post surfaces the server's {error} body as the returned error so the
// user sees the same message a browser client would.
func (c *APIClient) post(path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Post(c.BaseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("bad status: %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
