// randomchat/client/session.go
package client

import (
	"errors"
	"strings"
	"sync"

	"randomchat/randomchat/utils/types"
)

// State is the chat session's UI state.
type State int

const (
	Idle State = iota
	Sending
	Errored
)

// ErrorBanner is the only failure text ever shown; server detail stays in
// the server logs.
const ErrorBanner = "Failed to get response from AI. Please try again."

var (
	ErrEmptyMessage = errors.New("empty message")
	ErrBusy         = errors.New("a request is already in flight")
)

// ChatAPI is the one backend call a session needs. *APIClient satisfies it.
type ChatAPI interface {
	Chat(message string, history []types.ChatTurn) (string, error)
}

// Session holds the transcript for the lifetime of one client run. The
// user turn is appended optimistically before the request and rolled back
// if the request fails, so the visible transcript never contains a
// question the bot did not answer.
type Session struct {
	mu         sync.Mutex
	api        ChatAPI
	state      State
	transcript []types.ChatTurn
	errMsg     string
}

func NewSession(api ChatAPI) *Session {
	return &Session{api: api}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the visible conversation in order.
func (s *Session) Transcript() []types.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ChatTurn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// ErrorMessage returns the banner text, or "" outside the Errored state.
func (s *Session) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Errored {
		return ""
	}
	return s.errMsg
}

// Submit sends one message. Only one request may be in flight; a submit
// while Sending is rejected without touching the transcript. Submitting
// from the Errored state clears the banner and retries normally.
func (s *Session) Submit(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	if s.state == Sending {
		s.mu.Unlock()
		return "", ErrBusy
	}
	s.state = Sending
	s.errMsg = ""
	s.transcript = append(s.transcript, types.ChatTurn{Role: "user", Text: text})
	history := make([]types.ChatTurn, len(s.transcript))
	copy(history, s.transcript)
	s.mu.Unlock()

	reply, err := s.api.Chat(text, history)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// roll back the optimistic user turn
		s.transcript = s.transcript[:len(s.transcript)-1]
		s.state = Errored
		s.errMsg = ErrorBanner
		return "", err
	}
	s.transcript = append(s.transcript, types.ChatTurn{Role: "model", Text: reply})
	s.state = Idle
	return reply, nil
}
