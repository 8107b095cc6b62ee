package engine

import (
	"fmt"

	"github.com/tresuru/tresuru/internal/constants"
	"github.com/tresuru/tresuru/internal/model"
)

// EmergencyPause sets the kill switch. Deliberately single-signer: it
// is a fail-fast safety valve, so any one elevated signer may trip it.
func EmergencyPause(st *model.PauseState, signer *model.Signer) error {
	if !constants.IsElevated(signer.Role) {
		return fmt.Errorf("%w: emergency pause requires an admin or treasurer", ErrNotASigner)
	}
	st.Paused = true
	return nil
}

// VoteUnpause records one un-pause vote per signer. Reaching the
// threshold flips the pause off and clears all votes. Returns whether
// the pause was lifted by this vote.
func VoteUnpause(st *model.PauseState, signer *model.Signer, threshold int) (bool, error) {
	if !st.Paused {
		return false, fmt.Errorf("treasury is not paused")
	}
	if !constants.CanVote(signer.Role) {
		return false, fmt.Errorf("%w: viewers cannot vote to unpause", ErrNotASigner)
	}
	if st.HasVoted(signer.Address) {
		return false, ErrAlreadyVoted
	}

	st.UnpauseVotes = append(st.UnpauseVotes, signer.Address)
	if len(st.UnpauseVotes) >= threshold {
		st.Paused = false
		st.UnpauseVotes = nil
		return true, nil
	}
	return false, nil
}
