package store

import (
	"fmt"
	"strings"
)

func (s *Store) GetPaused() (bool, error) {
	var paused bool
	row := s.db.QueryRow("SELECT paused FROM governance WHERE id = 1")
	if err := row.Scan(&paused); err != nil {
		return false, fmt.Errorf("failed to query pause state: %w", err)
	}
	return paused, nil
}

func (s *Store) SetPaused(paused bool) error {
	if _, err := s.db.Exec("UPDATE governance SET paused = ? WHERE id = 1", paused); err != nil {
		return fmt.Errorf("failed to update pause state: %w", err)
	}
	return nil
}

func (s *Store) AddUnpauseVote(address string, votedAt int64) error {
	_, err := s.db.Exec("INSERT INTO unpause_votes (signer, voted_at) VALUES (?, ?)", address, votedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: unpause vote by %s", ErrConstraintViolation, address)
		}
		return fmt.Errorf("failed to record unpause vote: %w", err)
	}
	return nil
}

func (s *Store) GetUnpauseVotes() ([]string, error) {
	rows, err := s.db.Query("SELECT signer FROM unpause_votes ORDER BY voted_at, signer")
	if err != nil {
		return nil, fmt.Errorf("failed to query unpause votes: %w", err)
	}
	defer rows.Close()

	var votes []string
	for rows.Next() {
		var signer string
		if err := rows.Scan(&signer); err != nil {
			return nil, fmt.Errorf("failed to scan unpause vote: %w", err)
		}
		votes = append(votes, signer)
	}

	return votes, rows.Err()
}

func (s *Store) ClearUnpauseVotes() error {
	if _, err := s.db.Exec("DELETE FROM unpause_votes"); err != nil {
		return fmt.Errorf("failed to clear unpause votes: %w", err)
	}
	return nil
}
