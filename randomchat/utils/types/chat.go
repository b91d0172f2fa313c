// randomchat/utils/types/chat.go
package types

// ChatTurn is one message exchange unit. Role is "user" or "model";
// anything else is coerced to "model" before the turn leaves the server.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ChatRequest struct {
	Message     string     `json:"message"`
	ChatHistory []ChatTurn `json:"chatHistory,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
