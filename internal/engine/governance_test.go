package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
)

func TestEmergencyPause(t *testing.T) {
	st := &model.PauseState{}
	admin := &model.Signer{Address: "0xA1", Role: constants.RoleAdmin}
	viewer := &model.Signer{Address: "0xD4", Role: constants.RoleViewer}
	approver := &model.Signer{Address: "0xC3", Role: constants.RoleApprover}

	assert.ErrorIs(t, EmergencyPause(st, viewer), ErrNotASigner)
	assert.ErrorIs(t, EmergencyPause(st, approver), ErrNotASigner)
	assert.False(t, st.Paused)

	// One elevated signer, effective immediately.
	require.NoError(t, EmergencyPause(st, admin))
	assert.True(t, st.Paused)
}

func TestVoteUnpause(t *testing.T) {
	st := &model.PauseState{Paused: true}
	alex := &model.Signer{Address: "0xA1", Role: constants.RoleAdmin}
	rodney := &model.Signer{Address: "0xB2", Role: constants.RoleTreasurer}

	lifted, err := VoteUnpause(st, alex, 2)
	require.NoError(t, err)
	assert.False(t, lifted)
	assert.True(t, st.Paused)

	// One vote per signer.
	_, err = VoteUnpause(st, alex, 2)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	lifted, err = VoteUnpause(st, rodney, 2)
	require.NoError(t, err)
	assert.True(t, lifted)
	assert.False(t, st.Paused)
	assert.Empty(t, st.UnpauseVotes, "votes are cleared once the pause lifts")
}

func TestVoteUnpauseGuards(t *testing.T) {
	st := &model.PauseState{}
	alex := &model.Signer{Address: "0xA1", Role: constants.RoleAdmin}

	_, err := VoteUnpause(st, alex, 2)
	assert.Error(t, err, "cannot vote to unpause an unpaused treasury")

	st.Paused = true
	viewer := &model.Signer{Address: "0xD4", Role: constants.RoleViewer}
	_, err = VoteUnpause(st, viewer, 2)
	assert.ErrorIs(t, err, ErrNotASigner)
}
