package controllers

import (
	"context"
	"errors"
	"testing"

	apperrors "randomchat/randomchat/errors"
	"randomchat/randomchat/services/genai"
	"randomchat/randomchat/sources/psql/models"
	"randomchat/randomchat/utils/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwnerInfoStore struct {
	info *models.OwnerInfo
	err  error
}

func (s *fakeOwnerInfoStore) Get(ctx context.Context) (*models.OwnerInfo, error) {
	return s.info, s.err
}

type fakeCompleter struct {
	reply    string
	err      error
	called   bool
	contents []genai.Content
}

func (c *fakeCompleter) Generate(ctx context.Context, contents []genai.Content) (string, error) {
	c.called = true
	c.contents = contents
	return c.reply, c.err
}

func ownerRecord() *models.OwnerInfo {
	return &models.OwnerInfo{Name: "Alice", DOB: "2000-01-01", Name1: "Random AI"}
}

func TestChatEmptyMessage(t *testing.T) {
	completer := &fakeCompleter{}
	ctrl := NewChatController(&fakeOwnerInfoStore{}, completer)

	for _, message := range []string{"", "   "} {
		_, err := ctrl.Chat(context.Background(), types.ChatRequest{Message: message})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	assert.False(t, completer.called, "validation must happen before any external call")
}

func TestChatKeywordInterception(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"what is your name", "My Name is Random AI."},
		{"WHAT IS YOUR NAME?", "My Name is Random AI."},
		{"tell me your creators name", "My owner's name is Alice."},
		{"creators dob please", "My owner's date of birth is 2000-01-01."},
		{"what is your creators date of birth", "My owner's date of birth is 2000-01-01."},
	}
	for _, tt := range tests {
		completer := &fakeCompleter{}
		ctrl := NewChatController(&fakeOwnerInfoStore{info: ownerRecord()}, completer)

		got, err := ctrl.Chat(context.Background(), types.ChatRequest{Message: tt.message})
		require.NoError(t, err, tt.message)
		assert.Equal(t, tt.want, got, tt.message)
		assert.False(t, completer.called, "keyword replies must not contact the external API")
	}
}

func TestChatKeywordFallsThroughWithoutOwnerInfo(t *testing.T) {
	completer := &fakeCompleter{reply: "hi there"}
	ctrl := NewChatController(&fakeOwnerInfoStore{info: nil}, completer)

	got, err := ctrl.Chat(context.Background(), types.ChatRequest{Message: "what is your name"})
	require.NoError(t, err)
	assert.Equal(t, "hi there", got)
	assert.True(t, completer.called)
}

func TestChatForwardsHistoryInOrder(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	ctrl := NewChatController(&fakeOwnerInfoStore{}, completer)

	history := []types.ChatTurn{
		{Role: "user", Text: "first"},
		{Role: "assistant", Text: "second"},
		{Role: "model", Text: "third"},
		{Role: "", Text: "fourth"},
	}
	_, err := ctrl.Chat(context.Background(), types.ChatRequest{Message: "hello", ChatHistory: history})
	require.NoError(t, err)

	require.Len(t, completer.contents, 5)
	wantRoles := []string{"user", "model", "model", "model", "user"}
	wantTexts := []string{"first", "second", "third", "fourth", "hello"}
	for i, content := range completer.contents {
		assert.Equal(t, wantRoles[i], content.Role, "content %d role", i)
		require.Len(t, content.Parts, 1)
		assert.Equal(t, wantTexts[i], content.Parts[0].Text, "content %d text", i)
	}
}

func TestChatExternalFailure(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("connection refused")}
	ctrl := NewChatController(&fakeOwnerInfoStore{}, completer)

	_, err := ctrl.Chat(context.Background(), types.ChatRequest{Message: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}

func TestChatOwnerInfoLookupFailure(t *testing.T) {
	ctrl := NewChatController(&fakeOwnerInfoStore{err: errors.New("db down")}, &fakeCompleter{})

	_, err := ctrl.Chat(context.Background(), types.ChatRequest{Message: "what is your name"})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}
