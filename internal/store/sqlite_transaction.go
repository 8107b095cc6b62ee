package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const txColumns = `id, type, status, from_account, to_address, to_label, amount, asset, category,
		memo, description, created_by, created_at, approved_at, executed_at, settlement_ref, required_approvals`

// CreateTransactionWithApprovals inserts a proposal together with its
// seeded vote slots in a single database transaction.
func (s *Store) CreateTransactionWithApprovals(tx Transaction, approvals []Approval) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		// Already inside ExecTx; insert directly.
		return s.insertTransactionWithApprovals(tx, approvals)
	}

	dbTx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start database transaction : %w", err)
	}
	defer dbTx.Rollback()

	txStore := &Store{db: dbTx}
	if err := txStore.insertTransactionWithApprovals(tx, approvals); err != nil {
		return err
	}

	return dbTx.Commit()
}

func (s *Store) insertTransactionWithApprovals(tx Transaction, approvals []Approval) error {
	stmtTx, err := s.db.Prepare(`
		INSERT INTO transactions (` + txColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction SQL : %w", err)
	}
	defer stmtTx.Close()

	_, err = stmtTx.Exec(
		tx.ID, tx.Type, tx.Status, tx.FromAccount, tx.ToAddress, tx.ToLabel,
		tx.Amount, tx.Asset, tx.Category, tx.Memo, tx.Description,
		tx.CreatedBy, tx.CreatedAt, tx.ApprovedAt, tx.ExecutedAt,
		tx.SettlementRef, tx.RequiredApprovals,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("transaction %s already exists", tx.ID)
		}
		return fmt.Errorf("failed to insert transaction : %w", err)
	}

	stmtAppr, err := s.db.Prepare(`
		INSERT INTO approvals (id, transaction_id, signer, signer_name, status, voted_at, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare approval SQL : %w", err)
	}
	defer stmtAppr.Close()

	for _, a := range approvals {
		_, err := stmtAppr.Exec(a.ID, tx.ID, a.Signer, a.SignerName, a.Status, a.VotedAt, a.Comment)
		if err != nil {
			return fmt.Errorf("failed to insert approval : %w", err)
		}
	}

	return nil
}

// GetTransactionByID retrieves a transaction and all its vote slots.
func (s *Store) GetTransactionByID(txID string) (*Transaction, []*Approval, error) {
	row := s.db.QueryRow(`SELECT `+txColumns+` FROM transactions WHERE id = ?`, txID)

	tx, err := scanTransaction(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: transaction %s", ErrRecordNotFound, txID)
		}
		return nil, nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT id, transaction_id, signer, signer_name, status, voted_at, comment
		FROM approvals
		WHERE transaction_id = ?
		ORDER BY id
	`, txID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query approvals: %w", err)
	}
	defer rows.Close()

	var approvals []*Approval
	for rows.Next() {
		a := &Approval{}
		var votedAt sql.NullInt64
		if err := rows.Scan(&a.ID, &a.TransactionID, &a.Signer, &a.SignerName, &a.Status, &votedAt, &a.Comment); err != nil {
			return nil, nil, fmt.Errorf("failed to scan approval: %w", err)
		}
		if votedAt.Valid {
			a.VotedAt = &votedAt.Int64
		}
		approvals = append(approvals, a)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating approvals: %w", err)
	}

	return tx, approvals, nil
}

// GetAllTransactions retrieves recent transactions, newest first.
func (s *Store) GetAllTransactions(limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 100 // Default limit
	}

	rows, err := s.db.Query(`
		SELECT `+txColumns+`
		FROM transactions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) GetTransactionsByStatus(status string, limit int) ([]*Transaction, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
		SELECT `+txColumns+`
		FROM transactions
		WHERE status = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

func (s *Store) GetTransactionCount() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// UpdateTransactionState persists the mutable fields only; the core
// proposal fields are immutable after creation.
func (s *Store) UpdateTransactionState(tx Transaction) error {
	result, err := s.db.Exec(`
		UPDATE transactions
		SET status = ?, approved_at = ?, executed_at = ?, settlement_ref = ?
		WHERE id = ?
	`, tx.Status, tx.ApprovedAt, tx.ExecutedAt, tx.SettlementRef, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: transaction %s", ErrRecordNotFound, tx.ID)
	}

	return nil
}

func (s *Store) UpdateApproval(a Approval) error {
	result, err := s.db.Exec(`
		UPDATE approvals
		SET status = ?, voted_at = ?, comment = ?
		WHERE transaction_id = ? AND signer = ?
	`, a.Status, a.VotedAt, a.Comment, a.TransactionID, a.Signer)
	if err != nil {
		return fmt.Errorf("failed to update approval: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: approval for %s by %s", ErrRecordNotFound, a.TransactionID, a.Signer)
	}

	return nil
}

// GetExecutedOutboundTotalSince sums executed outbound value from the
// given instant, feeding the daily-limit gate.
func (s *Store) GetExecutedOutboundTotalSince(sinceUnix int64) (int64, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(`
		SELECT SUM(amount)
		FROM transactions
		WHERE status = 'executed' AND type = 'outbound' AND executed_at >= ?
	`, sinceUnix).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum executed outbound value: %w", err)
	}

	if total.Valid {
		return total.Int64, nil
	}
	return 0, nil
}

func scanTransaction(scan func(dest ...any) error) (*Transaction, error) {
	tx := &Transaction{}
	var approvedAt, executedAt sql.NullInt64

	err := scan(
		&tx.ID, &tx.Type, &tx.Status, &tx.FromAccount, &tx.ToAddress, &tx.ToLabel,
		&tx.Amount, &tx.Asset, &tx.Category, &tx.Memo, &tx.Description,
		&tx.CreatedBy, &tx.CreatedAt, &approvedAt, &executedAt,
		&tx.SettlementRef, &tx.RequiredApprovals,
	)
	if err != nil {
		return nil, err
	}

	if approvedAt.Valid {
		tx.ApprovedAt = &approvedAt.Int64
	}
	if executedAt.Valid {
		tx.ExecutedAt = &executedAt.Int64
	}
	return tx, nil
}

func collectTransactions(rows *sql.Rows) ([]*Transaction, error) {
	var transactions []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
