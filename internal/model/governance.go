package model

// PauseState is the treasury-wide kill switch. Pausing is a single
// elevated-signer action; lifting the pause needs UnpauseVotes to
// reach the medium-tier threshold.
type PauseState struct {
	Paused       bool
	UnpauseVotes []string
}

func (p *PauseState) HasVoted(address string) bool {
	for _, v := range p.UnpauseVotes {
		if v == address {
			return true
		}
	}
	return false
}
