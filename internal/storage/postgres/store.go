package postgres

import (
	"context"
	"database/sql"

	interfaces "github.com/saad-anwar/custodial-vault-service/internal/interfaces"
	"github.com/saad-anwar/custodial-vault-service/internal/models"
)

// OperationStore persists the audit journal in Postgres.
//
// Expected schema:
//
//	CREATE TABLE vault_operations (
//	    id         TEXT PRIMARY KEY,
//	    op_type    TEXT NOT NULL,
//	    account    TEXT NOT NULL,
//	    amount     NUMERIC NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type OperationStore struct {
	db *sql.DB
}

func NewOperationStore(db *sql.DB) *OperationStore {
	return &OperationStore{
		db: db,
	}
}

func (s *OperationStore) SaveOperation(ctx context.Context, op models.Operation) error {
	const query = `INSERT INTO vault_operations (id, op_type, account, amount, created_at)
	VALUES ($1,$2,$3,$4,$5)`

	_, err := s.db.ExecContext(ctx, query, op.ID, string(op.Type), op.Account, op.Amount, op.CreatedAt)
	return err
}

func (s *OperationStore) GetOperations() ([]models.Operation, error) {
	const query = `SELECT id, op_type, account, amount, created_at FROM vault_operations
	ORDER BY created_at`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []models.Operation
	for rows.Next() {
		var op models.Operation
		var opType string
		if err := rows.Scan(&op.ID, &opType, &op.Account, &op.Amount, &op.CreatedAt); err != nil {
			return nil, err
		}
		op.Type = models.OperationType(opType)
		operations = append(operations, op)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return operations, nil
}

func (s *OperationStore) GetOperationsByAccount(account string) ([]models.Operation, error) {
	const query = `SELECT id, op_type, account, amount, created_at FROM vault_operations
	WHERE account = $1 ORDER BY created_at`

	rows, err := s.db.Query(query, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []models.Operation
	for rows.Next() {
		var op models.Operation
		var opType string
		if err := rows.Scan(&op.ID, &opType, &op.Account, &op.Amount, &op.CreatedAt); err != nil {
			return nil, err
		}
		op.Type = models.OperationType(opType)
		operations = append(operations, op)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return operations, nil
}

var _ interfaces.OperationStore = (*OperationStore)(nil)
