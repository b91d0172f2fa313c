package client

import (
	"errors"
	"testing"
	"time"

	"randomchat/randomchat/utils/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAPI struct {
	reply   string
	err     error
	history []types.ChatTurn
	block   chan struct{}
}

func (a *scriptedAPI) Chat(message string, history []types.ChatTurn) (string, error) {
	a.history = history
	if a.block != nil {
		<-a.block
	}
	return a.reply, a.err
}

func TestSubmitSuccessAppendsModelTurn(t *testing.T) {
	api := &scriptedAPI{reply: "hi!"}
	session := NewSession(api)

	reply, err := session.Submit("hello")
	require.NoError(t, err)
	assert.Equal(t, "hi!", reply)
	assert.Equal(t, Idle, session.State())

	transcript := session.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, types.ChatTurn{Role: "user", Text: "hello"}, transcript[0])
	assert.Equal(t, types.ChatTurn{Role: "model", Text: "hi!"}, transcript[1])
}

func TestSubmitSendsFullTranscriptIncludingNewTurn(t *testing.T) {
	api := &scriptedAPI{reply: "second reply"}
	session := NewSession(api)

	_, err := session.Submit("first")
	require.NoError(t, err)
	_, err = session.Submit("second")
	require.NoError(t, err)

	require.Len(t, api.history, 3)
	assert.Equal(t, "first", api.history[0].Text)
	assert.Equal(t, "model", api.history[1].Role)
	assert.Equal(t, types.ChatTurn{Role: "user", Text: "second"}, api.history[2])
}

func TestSubmitFailureRollsBackUserTurn(t *testing.T) {
	api := &scriptedAPI{err: errors.New("boom")}
	session := NewSession(api)

	_, err := session.Submit("hello")
	require.Error(t, err)
	assert.Equal(t, Errored, session.State())
	assert.Equal(t, ErrorBanner, session.ErrorMessage())
	assert.Empty(t, session.Transcript(), "failed user turn must not stay visible")

	// resubmitting clears the error state
	api.err = nil
	api.reply = "recovered"
	_, err = session.Submit("hello again")
	require.NoError(t, err)
	assert.Equal(t, Idle, session.State())
	assert.Empty(t, session.ErrorMessage())
	assert.Len(t, session.Transcript(), 2)
}

func TestSubmitRejectsEmptyMessage(t *testing.T) {
	session := NewSession(&scriptedAPI{})
	_, err := session.Submit("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, session.Transcript())
}

func TestSubmitWhileSendingIsRejected(t *testing.T) {
	api := &scriptedAPI{reply: "slow reply", block: make(chan struct{})}
	session := NewSession(api)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := session.Submit("first")
		assert.NoError(t, err)
	}()

	// wait until the first submit is in flight
	for session.State() != Sending {
		time.Sleep(time.Millisecond)
	}
	_, err := session.Submit("second")
	assert.ErrorIs(t, err, ErrBusy)

	close(api.block)
	<-done
	assert.Equal(t, Idle, session.State())
	assert.Len(t, session.Transcript(), 2)
}
