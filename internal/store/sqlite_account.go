package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

func (s *Store) CreateAccount(name, address, accType, description string, balance int64) (int64, error) {
	stmt, err := s.db.Prepare(`
		INSERT INTO accounts (name, address, type, description, balance)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer stmt.Close()

	var newID int64

	err = stmt.QueryRow(name, address, accType, description, balance).Scan(&newID)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("%w: %s", ErrAccountExists, name)
		}
		return 0, fmt.Errorf("failed to insert account : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
		SELECT id, name, address, type, description, balance
		FROM accounts
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		acc := &Account{}
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.Address, &acc.Type, &acc.Description, &acc.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) GetAccountByName(name string) (*Account, error) {
	row := s.db.QueryRow("SELECT id, name, address, type, description, balance FROM accounts WHERE name = ?", name)
	return scanAccount(row, name)
}

func (s *Store) GetAccountByAddress(address string) (*Account, error) {
	row := s.db.QueryRow("SELECT id, name, address, type, description, balance FROM accounts WHERE address = ?", address)
	return scanAccount(row, address)
}

func scanAccount(row *sql.Row, key string) (*Account, error) {
	acc := &Account{}
	err := row.Scan(&acc.ID, &acc.Name, &acc.Address, &acc.Type, &acc.Description, &acc.Balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", ErrRecordNotFound, key)
		}
		return nil, fmt.Errorf("failed to query account %s : %w", key, err)
	}
	return acc, nil
}

func (s *Store) AccountExists(name string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE name = ?)", name)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) AdjustAccountBalance(address string, delta int64) error {
	result, err := s.db.Exec(`
		UPDATE accounts
		SET balance = balance + ?
		WHERE address = ?
	`, delta, address)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: account %s", ErrRecordNotFound, address)
	}

	return nil
}

func (s *Store) GetTotalBalance() (int64, error) {
	var total sql.NullInt64
	err := s.db.QueryRow("SELECT SUM(balance) FROM accounts").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate total balance: %w", err)
	}

	if total.Valid {
		return total.Int64, nil
	}
	return 0, nil
}
