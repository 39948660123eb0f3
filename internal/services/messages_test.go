package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/models"
)

func TestMessageQueueIsFIFO(t *testing.T) {
	sys := newTestSystem(t)
	jpID := openFor(t, sys, "jp", "secret", "Jacques")
	anaID := openFor(t, sys, "ana", "secret", "Ana")

	require.NoError(t, sys.SendMessage(jpID, "ana", "m1"))
	require.NoError(t, sys.SendMessage(jpID, "ana", "m2"))

	msg, err := sys.ReadMessage(anaID)
	require.NoError(t, err)
	assert.Equal(t, "m1", msg)

	msg, err = sys.ReadMessage(anaID)
	require.NoError(t, err)
	assert.Equal(t, "m2", msg)

	_, err = sys.ReadMessage(anaID)
	assert.Equal(t, models.ErrCodeEmptyQueue, models.ErrorCode(err))
}

func TestSendMessageGuards(t *testing.T) {
	sys := newTestSystem(t)
	jpID := openFor(t, sys, "jp", "secret", "Jacques")

	err := sys.SendMessage("bad-session", "jp", "hi")
	assert.Equal(t, models.ErrCodeInvalidSession, models.ErrorCode(err))

	err = sys.SendMessage(jpID, "ghost", "hi")
	assert.Equal(t, models.ErrCodeUnknownUser, models.ErrorCode(err))

	err = sys.SendMessage(jpID, "jp", "note to self")
	assert.Equal(t, models.ErrCodeSelfMessage, models.ErrorCode(err))
}

func TestReadMessageInvalidSession(t *testing.T) {
	sys := newTestSystem(t)
	_, err := sys.ReadMessage("bad-session")
	assert.Equal(t, models.ErrCodeInvalidSession, models.ErrorCode(err))
}
