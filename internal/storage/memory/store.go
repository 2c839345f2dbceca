package memory

import (
	"context"
	"sync"

	interfaces "github.com/saad-anwar/custodial-vault-service/internal/interfaces"
	"github.com/saad-anwar/custodial-vault-service/internal/models"
)

// OperationStore is an in-memory implementation of interfaces.OperationStore.
// It keeps the audit journal in a slice and is safe for concurrent use.
type OperationStore struct {
	mu         sync.Mutex
	operations []models.Operation
}

func NewOperationStore() *OperationStore {
	return &OperationStore{
		operations: make([]models.Operation, 0),
	}
}

// SaveOperation appends a committed operation to the journal.
func (s *OperationStore) SaveOperation(ctx context.Context, op models.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.operations = append(s.operations, op)
	return nil
}

// GetOperations returns a copy of the whole journal so callers cannot mutate
// internal state.
func (s *OperationStore) GetOperations() ([]models.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]models.Operation, len(s.operations))
	copy(copied, s.operations)
	return copied, nil
}

// GetOperationsByAccount returns the journal entries for a single account, in
// insertion order.
func (s *OperationStore) GetOperationsByAccount(account string) ([]models.Operation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []models.Operation
	for _, op := range s.operations {
		if op.Account == account {
			result = append(result, op)
		}
	}
	return result, nil
}

// Compile-time check: ensure OperationStore implements the store interface
var _ interfaces.OperationStore = (*OperationStore)(nil)
