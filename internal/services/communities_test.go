package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jackut/internal/models"
)

func TestCreateCommunity(t *testing.T) {
	sys := newTestSystem(t)
	jpID := openFor(t, sys, "jp", "secret", "Jacques")

	require.NoError(t, sys.CreateCommunity(jpID, "go", "gophers"))

	desc, err := sys.GetCommunityDescription("go")
	require.NoError(t, err)
	assert.Equal(t, "gophers", desc)

	owner, err := sys.GetCommunityOwner("go")
	require.NoError(t, err)
	assert.Equal(t, "jp", owner)

	// The owner is implicitly the first member.
	members, err := sys.GetCommunityMembers("go")
	require.NoError(t, err)
	assert.Equal(t, []string{"jp"}, members)

	communities, err := sys.GetUserCommunities("jp")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, communities)

	err = sys.CreateCommunity(jpID, "go", "again")
	assert.Equal(t, models.ErrCodeDuplicateCommunity, models.ErrorCode(err))
}

func TestUnknownCommunityQueries(t *testing.T) {
	sys := newTestSystem(t)
	jpID := openFor(t, sys, "jp", "secret", "Jacques")

	_, err := sys.GetCommunityDescription("nope")
	assert.Equal(t, models.ErrCodeUnknownCommunity, models.ErrorCode(err))
	_, err = sys.GetCommunityOwner("nope")
	assert.Equal(t, models.ErrCodeUnknownCommunity, models.ErrorCode(err))
	_, err = sys.GetCommunityMembers("nope")
	assert.Equal(t, models.ErrCodeUnknownCommunity, models.ErrorCode(err))
	err = sys.JoinCommunity(jpID, "nope")
	assert.Equal(t, models.ErrCodeUnknownCommunity, models.ErrorCode(err))
	err = sys.SendCommunityMessage(jpID, "nope", "hi")
	assert.Equal(t, models.ErrCodeUnknownCommunity, models.ErrorCode(err))
}

func TestJoinCommunity(t *testing.T) {
	sys := newTestSystem(t)
	jpID := openFor(t, sys, "jp", "secret", "Jacques")
	anaID := openFor(t, sys, "ana", "secret", "Ana")

	require.NoError(t, sys.CreateCommunity(jpID, "go", "gophers"))
	require.NoError(t, sys.JoinCommunity(anaID, "go"))

	members, err := sys.GetCommunityMembers("go")
	require.NoError(t, err)
	assert.Equal(t, []string{"jp", "ana"}, members)

	err = sys.JoinCommunity(anaID, "go")
	assert.Equal(t, models.ErrCodeExistingMembership, models.ErrorCode(err))
}

func TestCommunityBroadcastReachesMembersAtSendTime(t *testing.T) {
	sys := newTestSystem(t)
	jpID := openFor(t, sys, "jp", "secret", "Jacques")
	anaID := openFor(t, sys, "ana", "secret", "Ana")
	leoID := openFor(t, sys, "leo", "secret", "Leo")

	require.NoError(t, sys.CreateCommunity(jpID, "go", "gophers"))
	require.NoError(t, sys.JoinCommunity(anaID, "go"))

	require.NoError(t, sys.SendCommunityMessage(jpID, "go", "meetup friday"))

	// leo joins after the send and must not receive it.
	require.NoError(t, sys.JoinCommunity(leoID, "go"))

	// Every member at send time gets exactly one copy, the sender included.
	for _, id := range []string{jpID, anaID} {
		msg, err := sys.ReadMessage(id)
		require.NoError(t, err)
		assert.Equal(t, "meetup friday", msg)
		_, err = sys.ReadMessage(id)
		assert.Equal(t, models.ErrCodeEmptyQueue, models.ErrorCode(err))
	}

	_, err := sys.ReadMessage(leoID)
	assert.Equal(t, models.ErrCodeEmptyQueue, models.ErrorCode(err))
}
