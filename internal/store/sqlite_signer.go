package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func (s *Store) CreateSigner(address, name, role string, enrolledAt int64) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO signers (address, name, role, enrolled_at)
		VALUES (?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(address, name, role, enrolledAt).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: signers.address") {
			return 0, fmt.Errorf("%w: %s", ErrSignerExists, address)
		}
		return 0, fmt.Errorf("failed to insert signer : %w", err)
	}

	return newID, nil
}

func (s *Store) GetSignerByAddress(address string) (*Signer, error) {
	row := s.db.QueryRow("SELECT id, address, name, role, enrolled_at FROM signers WHERE address = ?", address)

	sg := &Signer{}
	err := row.Scan(&sg.ID, &sg.Address, &sg.Name, &sg.Role, &sg.EnrolledAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: signer %s", ErrRecordNotFound, address)
		}
		return nil, fmt.Errorf("failed to query signer %s : %w", address, err)
	}

	return sg, nil
}

func (s *Store) GetAllSigners() ([]*Signer, error) {
	rows, err := s.db.Query(`
		SELECT id, address, name, role, enrolled_at
		FROM signers
		ORDER BY enrolled_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query signers: %w", err)
	}
	defer rows.Close()

	var signers []*Signer
	for rows.Next() {
		sg := &Signer{}
		if err := rows.Scan(&sg.ID, &sg.Address, &sg.Name, &sg.Role, &sg.EnrolledAt); err != nil {
			return nil, fmt.Errorf("failed to scan signer: %w", err)
		}
		signers = append(signers, sg)
	}

	return signers, rows.Err()
}

func (s *Store) DeleteSigner(address string) error {
	result, err := s.db.Exec(`DELETE FROM signers WHERE address = ?`, address)
	if err != nil {
		return fmt.Errorf("failed to delete signer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: signer %s", ErrRecordNotFound, address)
	}

	return nil
}

func (s *Store) CountSignersByRole(role string) (int, error) {
	var count int
	row := s.db.QueryRow("SELECT COUNT(*) FROM signers WHERE role = ?", role)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count signers: %w", err)
	}
	return count, nil
}
